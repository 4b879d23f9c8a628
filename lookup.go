package envvar

import (
	"maps"
	"os"
	"sort"
)

// LookupFn looks up a variable by name and returns its value and whether it was defined
type LookupFn func(string) (string, bool)

// CompositeLookup manages multiple LookupFn with explicit priorities
type CompositeLookup struct {
	lookups []prioritizedLookup
}

func WithPriority(lookup LookupFn, priority int) prioritizedLookup {
	return prioritizedLookup{
		Lookup:   lookup,
		Priority: priority,
	}
}

// NewCompositeLookup creates a new CompositeLookup with the given prioritized lookup functions
// Higher priority values are tried first
func NewCompositeLookup(lookups ...prioritizedLookup) *CompositeLookup {
	sorted := make([]prioritizedLookup, len(lookups))
	copy(sorted, lookups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &CompositeLookup{
		lookups: sorted,
	}
}

// prioritizedLookup associates a lookup function with a priority value
type prioritizedLookup struct {
	Priority int
	Lookup   LookupFn
}

// Lookup implements the LookupFn signature by trying each lookup function in priority order.
// A variable defined with an empty value stops the search.
func (c *CompositeLookup) Lookup(name string) (string, bool) {
	for _, pl := range c.lookups {
		if v, ok := pl.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// OSEnv looks up variables in the process environment
var OSEnv LookupFn = os.LookupEnv

// MapLookup returns a LookupFn backed by a copy of m
func MapLookup(m map[string]string) LookupFn {
	vars := maps.Clone(m)
	return func(name string) (string, bool) {
		value, ok := vars[name]
		return value, ok
	}
}
