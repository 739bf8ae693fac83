package query

import (
	"sort"

	"github.com/sanonone/countrydb/pkg/country"
	"github.com/sanonone/countrydb/pkg/ordered"
)

// CountryNames returns the distinct country names in ascending order.
func (r *Repository) CountryNames() []string {
	defer r.observe("CountryNames")()

	names := ordered.NewSet[string]()
	for _, c := range r.countries {
		names.Insert(c.Name)
	}
	return names.Items()
}

// CapitalsOrderByName returns every capital, duplicates included, in
// ascending order.
func (r *Repository) CapitalsOrderByName() []string {
	defer r.observe("CapitalsOrderByName")()

	capitals := r.capitals()
	sort.Strings(capitals)
	return capitals
}

// CapitalsOrderByNameDesc returns every capital in descending order.
func (r *Repository) CapitalsOrderByNameDesc() []string {
	defer r.observe("CapitalsOrderByNameDesc")()

	capitals := r.capitals()
	sort.Sort(sort.Reverse(sort.StringSlice(capitals)))
	return capitals
}

func (r *Repository) capitals() []string {
	capitals := make([]string, 0, len(r.countries))
	for _, c := range r.countries {
		capitals = append(capitals, c.Capital)
	}
	return capitals
}

// NamesOfEuropeanCountries returns the distinct names of European countries
// in ascending order.
func (r *Repository) NamesOfEuropeanCountries() []string {
	defer r.observe("NamesOfEuropeanCountries")()

	return r.namesInRegion(country.Europe)
}

// NamesOfCountriesByRegion returns the distinct names of the countries in
// region in ascending order.
func (r *Repository) NamesOfCountriesByRegion(region country.Region) ([]string, error) {
	defer r.observe("NamesOfCountriesByRegion")()

	if err := checkRegion(region); err != nil {
		return nil, err
	}
	return r.namesInRegion(region), nil
}

func (r *Repository) namesInRegion(region country.Region) []string {
	names := ordered.NewSet[string]()
	for _, c := range r.countries {
		if c.Region == region {
			names.Insert(c.Name)
		}
	}
	return names.Items()
}

// CountriesBelowPopulationLimit returns the countries whose population is
// strictly below limit.
func (r *Repository) CountriesBelowPopulationLimit(limit int64) country.Set {
	defer r.observe("CountriesBelowPopulationLimit")()

	result := make(country.Set)
	for _, c := range r.countries {
		if c.Population < limit {
			result.Add(c)
		}
	}
	return result
}

// PopulationsByRegion returns the distinct populations found in region,
// ascending.
func (r *Repository) PopulationsByRegion(region country.Region) ([]int64, error) {
	defer r.observe("PopulationsByRegion")()

	if err := checkRegion(region); err != nil {
		return nil, err
	}
	populations := ordered.NewSet[int64]()
	for _, c := range r.countries {
		if c.Region == region {
			populations.Insert(c.Population)
		}
	}
	return populations.Items(), nil
}

// CountriesByPopulation returns the countries with exactly population
// inhabitants.
func (r *Repository) CountriesByPopulation(population int64) country.Set {
	defer r.observe("CountriesByPopulation")()

	result := make(country.Set)
	for _, c := range r.countries {
		if c.Population == population {
			result.Add(c)
		}
	}
	return result
}

// CountriesByPopulationRange returns the countries whose population lies in
// [lower, upper]. An inverted range yields an empty set.
func (r *Repository) CountriesByPopulationRange(lower, upper int64) country.Set {
	defer r.observe("CountriesByPopulationRange")()

	result := make(country.Set)
	for _, c := range r.countries {
		if inRange(c.Population, lower, upper) {
			result.Add(c)
		}
	}
	return result
}

func inRange(population, lower, upper int64) bool {
	return population >= lower && population <= upper
}
