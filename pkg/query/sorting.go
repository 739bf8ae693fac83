package query

import (
	"cmp"
	"slices"

	"github.com/sanonone/countrydb/pkg/country"
)

// CountriesOrderByPopulationDesc returns all countries, most populous first.
// Equal populations keep their source order.
func (r *Repository) CountriesOrderByPopulationDesc() []country.Country {
	defer r.observe("CountriesOrderByPopulationDesc")()

	return r.sorted(byPopulationDesc)
}

// CountriesOrderByCapitalLengthThenPopulationDesc orders countries by the
// length of their capital, then by population descending.
func (r *Repository) CountriesOrderByCapitalLengthThenPopulationDesc() []country.Country {
	defer r.observe("CountriesOrderByCapitalLengthThenPopulationDesc")()

	return r.sorted(func(a, b country.Country) int {
		if n := byCapitalLength(a, b); n != 0 {
			return n
		}
		return byPopulationDesc(a, b)
	})
}

// CountriesOrderByCapitalLengthThenCapital orders countries by the length of
// their capital, then by capital name.
func (r *Repository) CountriesOrderByCapitalLengthThenCapital() []country.Country {
	defer r.observe("CountriesOrderByCapitalLengthThenCapital")()

	return r.sorted(func(a, b country.Country) int {
		if n := byCapitalLength(a, b); n != 0 {
			return n
		}
		return byCapital(a, b)
	})
}

// sorted returns a stably sorted copy; records comparing equal keep source order.
func (r *Repository) sorted(compare func(a, b country.Country) int) []country.Country {
	out := append([]country.Country(nil), r.countries...)
	slices.SortStableFunc(out, compare)
	return out
}

func byPopulationDesc(a, b country.Country) int {
	return cmp.Compare(b.Population, a.Population)
}

func byCapitalLength(a, b country.Country) int {
	return cmp.Compare(a.CapitalLength(), b.CapitalLength())
}

func byCapital(a, b country.Country) int {
	return cmp.Compare(a.Capital, b.Capital)
}
