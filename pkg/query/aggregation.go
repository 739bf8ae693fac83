package query

import (
	"slices"

	"github.com/sanonone/countrydb/pkg/country"
	"github.com/sanonone/countrydb/pkg/ordered"
)

// byRegion returns a map with an entry for every region, each initialised
// by newValue. Region-keyed results always carry all six keys.
func byRegion[V any](newValue func() V) map[country.Region]V {
	m := make(map[country.Region]V, len(country.Regions()))
	for _, region := range country.Regions() {
		m[region] = newValue()
	}
	return m
}

func newSet() country.Set {
	return make(country.Set)
}

// CountriesByCodes maps every code to its country.
func (r *Repository) CountriesByCodes() map[string]country.Country {
	defer r.observe("CountriesByCodes")()

	result := make(map[string]country.Country, len(r.countries))
	for _, c := range r.countries {
		result[c.Code] = c
	}
	return result
}

// CountOfCountriesByRegions maps every region to its number of countries.
func (r *Repository) CountOfCountriesByRegions() map[country.Region]int64 {
	defer r.observe("CountOfCountriesByRegions")()

	result := byRegion(func() int64 { return 0 })
	for _, c := range r.countries {
		result[c.Region]++
	}
	return result
}

// CountriesByRegions maps every region to the set of its countries.
func (r *Repository) CountriesByRegions() map[country.Region]country.Set {
	defer r.observe("CountriesByRegions")()

	result := byRegion(newSet)
	for _, c := range r.countries {
		result[c.Region].Add(c)
	}
	return result
}

// MostPopulousCountryByRegions maps every region to its most populous
// country, or to an empty Optional when the region has none. The first
// country in source order wins ties.
func (r *Repository) MostPopulousCountryByRegions() map[country.Region]country.Optional {
	defer r.observe("MostPopulousCountryByRegions")()

	result := byRegion(country.None)
	for _, c := range r.countries {
		if best, ok := result[c.Region].Get(); !ok || best.Population < c.Population {
			result[c.Region] = country.Some(c)
		}
	}
	return result
}

// CountriesByRegionsOrderByCapitals maps every region to its countries
// ordered by capital name. Equal capitals keep source order.
func (r *Repository) CountriesByRegionsOrderByCapitals() map[country.Region][]country.Country {
	defer r.observe("CountriesByRegionsOrderByCapitals")()

	result := byRegion(func() []country.Country { return []country.Country{} })
	for _, c := range r.countries {
		result[c.Region] = append(result[c.Region], c)
	}
	for region := range result {
		slices.SortStableFunc(result[region], byCapital)
	}
	return result
}

// CountriesByRegionsFilterByPopulation maps every region to its countries
// whose population lies in [lower, upper].
func (r *Repository) CountriesByRegionsFilterByPopulation(lower, upper int64) map[country.Region]country.Set {
	defer r.observe("CountriesByRegionsFilterByPopulation")()

	result := byRegion(newSet)
	for _, c := range r.countries {
		if inRange(c.Population, lower, upper) {
			result[c.Region].Add(c)
		}
	}
	return result
}

// CountriesByRegionsAndCodes maps every region to its countries keyed by
// code, ordered by code.
func (r *Repository) CountriesByRegionsAndCodes() map[country.Region]*ordered.Map[string, country.Country] {
	defer r.observe("CountriesByRegionsAndCodes")()

	result := byRegion(ordered.NewMap[string, country.Country])
	for _, c := range r.countries {
		result[c.Region].Set(c.Code, c)
	}
	return result
}

// CountriesByRegionsAndFirstLetters maps every region to the first letters
// of its country names, and each letter to the matching countries. Letters
// appear only when at least one country starts with them.
func (r *Repository) CountriesByRegionsAndFirstLetters() map[country.Region]*ordered.Map[string, country.Set] {
	defer r.observe("CountriesByRegionsAndFirstLetters")()

	result := byRegion(ordered.NewMap[string, country.Set])
	for _, c := range r.countries {
		result[c.Region].GetOrInsert(c.FirstLetter(), newSet).Add(c)
	}
	return result
}

// CountriesByFirstLettersAndRegions is the cross-tabulation of first letters
// and regions. The outer map holds observed letters only; each inner map
// holds only the regions that have a country starting with that letter.
func (r *Repository) CountriesByFirstLettersAndRegions() *ordered.Map[string, map[country.Region]country.Set] {
	defer r.observe("CountriesByFirstLettersAndRegions")()

	result := ordered.NewMap[string, map[country.Region]country.Set]()
	for _, c := range r.countries {
		regions := result.GetOrInsert(c.FirstLetter(), func() map[country.Region]country.Set {
			return make(map[country.Region]country.Set)
		})
		set, ok := regions[c.Region]
		if !ok {
			set = newSet()
			regions[c.Region] = set
		}
		set.Add(c)
	}
	return result
}
