package repository

import "errors"

// Sentinel kinds for season store errors.
var (
	ErrClosed = errors.New("season store closed")
)
