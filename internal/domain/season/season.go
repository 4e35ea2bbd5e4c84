// Package season defines the week domain: the fixed, ordered set of
// valid week labels for a season.
//
// The ordering is positional, never lexicographic ("Week 10" sorts
// after "Week 9", and the terminal label sorts last). A Weeks value is
// immutable after construction and safe for unsynchronized concurrent
// reads, so it can live as process-wide configuration.
package season

import (
	"fmt"
	"strings"
)

// Weeks is an ordered week domain with O(1) label-to-position lookup.
type Weeks struct {
	labels []string
	index  map[string]int
}

// New builds a week domain from ordered labels. Labels are trimmed;
// empty or duplicate labels are rejected.
func New(labels []string) (Weeks, error) {
	if len(labels) == 0 {
		return Weeks{}, ErrEmptyDomain
	}
	w := Weeks{
		labels: make([]string, 0, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			return Weeks{}, fmt.Errorf("label %d: %w", i, ErrEmptyLabel)
		}
		if _, dup := w.index[l]; dup {
			return Weeks{}, fmt.Errorf("label %q: %w", l, ErrDuplicateLabel)
		}
		w.index[l] = len(w.labels)
		w.labels = append(w.labels, l)
	}
	return w, nil
}

// Default returns the standard season: "Week 1" through "Week 16",
// then "Bowls".
func Default() Weeks {
	labels := make([]string, 0, 17)
	for i := 1; i <= 16; i++ {
		labels = append(labels, fmt.Sprintf("Week %d", i))
	}
	labels = append(labels, "Bowls")
	w, err := New(labels)
	if err != nil {
		// Static input; cannot fail.
		panic(err)
	}
	return w
}

// Index returns the position of label in domain order.
func (w Weeks) Index(label string) (int, bool) {
	i, ok := w.index[label]
	return i, ok
}

// Contains reports whether label is a member of the domain.
func (w Weeks) Contains(label string) bool {
	_, ok := w.index[label]
	return ok
}

// Label returns the label at position i.
func (w Weeks) Label(i int) string {
	return w.labels[i]
}

// Labels returns a copy of the ordered labels.
func (w Weeks) Labels() []string {
	out := make([]string, len(w.labels))
	copy(out, w.labels)
	return out
}

// Len returns the number of weeks in the domain.
func (w Weeks) Len() int {
	return len(w.labels)
}
