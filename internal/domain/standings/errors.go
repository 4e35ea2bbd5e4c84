package standings

import (
	"errors"
	"fmt"
)

// ErrInvalidWeek is the sentinel kind for week labels outside the
// configured domain; use errors.Is against it.
var ErrInvalidWeek = errors.New("week label not in season domain")

// InvalidWeekError reports the event that referenced an unknown week.
type InvalidWeekError struct {
	Week   string
	Player string
}

func (e *InvalidWeekError) Error() string {
	return fmt.Sprintf("week label %q (player %q): %v", e.Week, e.Player, ErrInvalidWeek)
}

func (e *InvalidWeekError) Unwrap() error {
	return ErrInvalidWeek
}
