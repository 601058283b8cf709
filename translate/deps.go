package translate

import (
	"maps"
	"slices"
)

// DepSet is an unordered set of dependency declaration lines.
// The zero value is ready for reads; use Add through a non-nil set.
type DepSet map[string]struct{}

// NewDepSet returns a set holding lines.
func NewDepSet(lines ...string) DepSet {
	d := make(DepSet, len(lines))
	d.Add(lines...)
	return d
}

// Add inserts lines, skipping empty strings.
func (d DepSet) Add(lines ...string) {
	for _, line := range lines {
		if line != "" {
			d[line] = struct{}{}
		}
	}
}

// Has reports whether line is in the set.
func (d DepSet) Has(line string) bool {
	_, ok := d[line]
	return ok
}

// Union adds every line of other to d.
func (d DepSet) Union(other DepSet) {
	for line := range other {
		d[line] = struct{}{}
	}
}

// Sorted returns the lines in lexical order.
func (d DepSet) Sorted() []string {
	return slices.Sorted(maps.Keys(d))
}

// Len returns the number of lines.
func (d DepSet) Len() int {
	return len(d)
}
