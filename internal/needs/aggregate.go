// Package needs counts how many of the selected species share each need.
package needs

import (
	"slices"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
)

// Count is one need and the number of selected species requiring it.
type Count struct {
	Need  catalog.Need
	Count int
}

// Result is rebuilt from scratch for every report.
type Result struct {
	Counts  []Count
	Species int
}

// Aggregate counts need overlap across species. Counts are sorted by
// descending count, ties by ascending need order.
func Aggregate(species []catalog.Species) Result {
	counter := make(map[catalog.Need]int)
	for _, s := range species {
		for _, n := range s.Needs() {
			counter[n]++
		}
	}

	counts := make([]Count, 0, len(counter))
	for n, c := range counter {
		counts = append(counts, Count{Need: n, Count: c})
	}
	slices.SortFunc(counts, func(a, b Count) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return catalog.CompareNeeds(a.Need, b.Need)
	})

	return Result{Counts: counts, Species: len(species)}
}

// Shared returns the counts of needs required by at least threshold species.
func (r Result) Shared(threshold int) []Count {
	var out []Count
	for _, c := range r.Counts {
		if c.Count >= threshold {
			out = append(out, c)
		}
	}
	return out
}

// Of returns the count for one need; zero when no selected species needs it.
func (r Result) Of(n catalog.Need) int {
	for _, c := range r.Counts {
		if c.Need == n {
			return c.Count
		}
	}
	return 0
}
