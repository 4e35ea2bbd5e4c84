package ingest

import "errors"

// Sentinel kinds for season sheet loading errors.
var (
	ErrMissingHeader = errors.New("missing or incomplete header row")
	ErrBadRow        = errors.New("malformed row")
)
