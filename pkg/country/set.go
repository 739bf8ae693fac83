package country

import "sort"

// Set is a set of countries keyed by code. Adding a country whose code is
// already present replaces the stored record.
type Set map[string]Country

// NewSet returns a set holding the given countries.
func NewSet(countries ...Country) Set {
	s := make(Set, len(countries))
	for _, c := range countries {
		s.Add(c)
	}
	return s
}

func (s Set) Add(c Country) {
	s[c.Code] = c
}

// Contains reports whether a country with the given code is in the set.
func (s Set) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members ordered by code.
func (s Set) Sorted() []Country {
	out := make([]Country, 0, len(s))
	for _, c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Codes returns the member codes in ascending order.
func (s Set) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
