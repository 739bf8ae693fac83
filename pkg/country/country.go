// Package country defines the record type served by countrydb and the small
// value types built around it: the Region enumeration, code-keyed sets and
// an optional wrapper for lookups that may miss.
package country

import "unicode/utf8"

// Country is an immutable country record. Identity is the Code field alone.
type Country struct {
	Code       string  `json:"code" yaml:"code"`
	Name       string  `json:"name" yaml:"name"`
	Capital    string  `json:"capital" yaml:"capital"`
	Region     Region  `json:"region" yaml:"region"`
	Population int64   `json:"population" yaml:"population"`
	Area       float64 `json:"area" yaml:"area"`
}

// Equal reports whether both records share the same code.
func (c Country) Equal(other Country) bool {
	return c.Code == other.Code
}

// FirstLetter returns the first code point of the name, or "" for an empty name.
func (c Country) FirstLetter() string {
	r, size := utf8.DecodeRuneInString(c.Name)
	if size == 0 {
		return ""
	}
	return string(r)
}

// CapitalLength is the length of the capital in code points.
func (c Country) CapitalLength() int {
	return utf8.RuneCountInString(c.Capital)
}
