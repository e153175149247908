package catalog

import "sort"

// Set is a string set; insertion is idempotent
type Set map[string]struct{}

// NewSet returns a set holding xs
func NewSet(xs ...string) Set {
	s := make(Set, len(xs))
	for _, x := range xs {
		s[x] = struct{}{}
	}
	return s
}

// Add inserts x
func (s Set) Add(x string) { s[x] = struct{}{} }

// Has reports whether x is present
func (s Set) Has(x string) bool {
	_, ok := s[x]
	return ok
}

// Len returns the number of members
func (s Set) Len() int { return len(s) }

// Sorted returns the members in ascending order as a fresh slice
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for x := range s {
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}

// Clone returns an independent copy
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for x := range s {
		c[x] = struct{}{}
	}
	return c
}
