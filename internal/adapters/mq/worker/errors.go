package worker

import "errors"

// Sentinel kinds for submission validation errors. Week labels outside
// the domain carry the engine's standings.ErrInvalidWeek kind instead.
var (
	ErrMissingPlayer = errors.New("missing player")
	ErrInvalidRole   = errors.New("unknown pick role")
)
