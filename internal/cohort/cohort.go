// Package cohort orders the synthetic student roster for the instructor view.
package cohort

import (
	"sort"

	"github.com/abhisek/edusense/internal/signals"
)

// VisibleRows is how many students the engagement list shows.
const VisibleRows = 10

// SortKey selects the roster ordering.
type SortKey string

const (
	ByConfusion SortKey = "confusion"
	ByFrequency SortKey = "frequency"
)

// AllSortKeys returns the keys in toggle order.
func AllSortKeys() []SortKey {
	return []SortKey{ByConfusion, ByFrequency}
}

// ParseSortKey returns the key for s, defaulting to ByConfusion.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case ByConfusion:
		return ByConfusion, true
	case ByFrequency:
		return ByFrequency, true
	default:
		return ByConfusion, false
	}
}

// Next returns the other sort key.
func (k SortKey) Next() SortKey {
	switch k {
	case ByConfusion:
		return ByFrequency
	default:
		return ByConfusion
	}
}

// DisplayName returns the button label for the key.
func (k SortKey) DisplayName() string {
	switch k {
	case ByConfusion:
		return "By Confusion"
	case ByFrequency:
		return "By Frequency"
	default:
		return string(k)
	}
}

func (k SortKey) value(s signals.StudentRecord) int {
	switch k {
	case ByFrequency:
		return s.ConfusionFrequency
	default:
		return s.AvgConfusion
	}
}

// Sorted returns a copy of roster ordered descending by key. The input is not
// modified. Ties keep roster order.
func Sorted(roster []signals.StudentRecord, key SortKey) []signals.StudentRecord {
	out := make([]signals.StudentRecord, len(roster))
	copy(out, roster)
	sort.SliceStable(out, func(i, j int) bool {
		return key.value(out[i]) > key.value(out[j])
	})
	return out
}

// Top returns the first n students after sorting by key.
func Top(roster []signals.StudentRecord, key SortKey, n int) []signals.StudentRecord {
	sorted := Sorted(roster, key)
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Expanded tracks which student rows show their challenging topics.
type Expanded map[string]bool

// Toggle flips the expansion state for id.
func (e Expanded) Toggle(id string) {
	if e[id] {
		delete(e, id)
		return
	}
	e[id] = true
}
