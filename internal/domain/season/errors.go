package season

import "errors"

// Sentinel kinds for week domain construction errors.
var (
	ErrEmptyDomain    = errors.New("week domain must not be empty")
	ErrEmptyLabel     = errors.New("empty week label")
	ErrDuplicateLabel = errors.New("duplicate week label")
)
