// Package model holds the value types shared by the trecsweep domain,
// adapters and controllers.
package model

import "sort"

// RefSet is a set of referenced filenames. Case is preserved as written
// in the document; extension checks elsewhere are case-insensitive.
type RefSet map[string]struct{}

// NewRefSet builds a set from the given names.
func NewRefSet(names ...string) RefSet {
	s := make(RefSet, len(names))
	for _, name := range names {
		s.Add(name)
	}

	return s
}

// Add inserts name into the set.
func (s RefSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is a member of the set.
func (s RefSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Union returns a new set holding the members of both sets.
func (s RefSet) Union(other RefSet) RefSet {
	merged := make(RefSet, len(s)+len(other))
	for name := range s {
		merged.Add(name)
	}

	for name := range other {
		merged.Add(name)
	}

	return merged
}

// Sorted returns the members in lexicographic order.
func (s RefSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
