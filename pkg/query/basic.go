package query

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/sanonone/countrydb/pkg/country"
)

// MaximumPopulation returns the highest population in the dataset.
func (r *Repository) MaximumPopulation() (int64, error) {
	defer r.observe("MaximumPopulation")()

	if len(r.countries) == 0 {
		return 0, fmt.Errorf("maximum population: %w", ErrEmptyDataset)
	}
	highest := r.countries[0].Population
	for _, c := range r.countries[1:] {
		if c.Population > highest {
			highest = c.Population
		}
	}
	return highest, nil
}

// MinimumPopulation returns the lowest population in the dataset.
func (r *Repository) MinimumPopulation() (int64, error) {
	defer r.observe("MinimumPopulation")()

	if len(r.countries) == 0 {
		return 0, fmt.Errorf("minimum population: %w", ErrEmptyDataset)
	}
	lowest := r.countries[0].Population
	for _, c := range r.countries[1:] {
		if c.Population < lowest {
			lowest = c.Population
		}
	}
	return lowest, nil
}

// AveragePopulation returns the sum of populations divided by the record count.
func (r *Repository) AveragePopulation() (float64, error) {
	defer r.observe("AveragePopulation")()

	if len(r.countries) == 0 {
		return 0, fmt.Errorf("average population: %w", ErrEmptyDataset)
	}
	var sum int64
	for _, c := range r.countries {
		sum += c.Population
	}
	return float64(sum) / float64(len(r.countries)), nil
}

// LargestCountryByArea returns the country with the greatest area.
// The first one in source order wins ties.
func (r *Repository) LargestCountryByArea() (country.Country, error) {
	defer r.observe("LargestCountryByArea")()

	if len(r.countries) == 0 {
		return country.Country{}, fmt.Errorf("largest country by area: %w", ErrEmptyDataset)
	}
	largest := r.countries[0]
	for _, c := range r.countries[1:] {
		if c.Area > largest.Area {
			largest = c
		}
	}
	return largest, nil
}

// Statistics summarizes the population distribution.
type Statistics struct {
	Count  int     `json:"count"`
	Sum    int64   `json:"sum"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Median float64 `json:"median"`
}

// PopulationStatistics computes count, sum, mean, sample standard deviation
// and median of the populations.
func (r *Repository) PopulationStatistics() (Statistics, error) {
	defer r.observe("PopulationStatistics")()

	if len(r.countries) == 0 {
		return Statistics{}, fmt.Errorf("population statistics: %w", ErrEmptyDataset)
	}

	var sum int64
	values := make([]float64, len(r.countries))
	for i, c := range r.countries {
		sum += c.Population
		values[i] = float64(c.Population)
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		// MeanStdDev reports NaN for a single sample.
		std = 0
	}

	sort.Float64s(values)
	// Empirical picks the lower middle value for an even count.
	median := stat.Quantile(0.5, stat.Empirical, values, nil)
	if len(values)%2 == 0 {
		median = (values[len(values)/2-1] + values[len(values)/2]) / 2
	}

	return Statistics{
		Count:  len(r.countries),
		Sum:    sum,
		Mean:   mean,
		StdDev: std,
		Median: median,
	}, nil
}

// CountOfEuropeanCountries returns the number of countries in Europe.
func (r *Repository) CountOfEuropeanCountries() int64 {
	defer r.observe("CountOfEuropeanCountries")()

	return r.countRegion(country.Europe)
}

// CountOfCountriesByRegion returns the number of countries in region.
func (r *Repository) CountOfCountriesByRegion(region country.Region) (int64, error) {
	defer r.observe("CountOfCountriesByRegion")()

	if err := checkRegion(region); err != nil {
		return 0, err
	}
	return r.countRegion(region), nil
}

func (r *Repository) countRegion(region country.Region) int64 {
	var count int64
	for _, c := range r.countries {
		if c.Region == region {
			count++
		}
	}
	return count
}

// PopulationByRegion returns the total population of region.
func (r *Repository) PopulationByRegion(region country.Region) (int64, error) {
	defer r.observe("PopulationByRegion")()

	if err := checkRegion(region); err != nil {
		return 0, err
	}
	var sum int64
	for _, c := range r.countries {
		if c.Region == region {
			sum += c.Population
		}
	}
	return sum, nil
}

// PopulationExists reports whether any country has exactly population inhabitants.
func (r *Repository) PopulationExists(population int64) bool {
	defer r.observe("PopulationExists")()

	for _, c := range r.countries {
		if c.Population == population {
			return true
		}
	}
	return false
}

// CountryByCode looks up a country by its code. A miss is an empty Optional,
// not an error; only a blank code is rejected.
func (r *Repository) CountryByCode(code string) (country.Optional, error) {
	defer r.observe("CountryByCode")()

	if err := checkCode(code); err != nil {
		return country.None(), err
	}
	for _, c := range r.countries {
		if c.Code == code {
			return country.Some(c), nil
		}
	}
	return country.None(), nil
}

// MostPopulousCountryByRegion returns the most populous country of region.
// Only a strictly greater population replaces the current pick, so the
// first country in source order wins ties.
func (r *Repository) MostPopulousCountryByRegion(region country.Region) (country.Optional, error) {
	defer r.observe("MostPopulousCountryByRegion")()

	if err := checkRegion(region); err != nil {
		return country.None(), err
	}
	selected := country.None()
	for _, c := range r.countries {
		if c.Region != region {
			continue
		}
		if best, ok := selected.Get(); !ok || c.Population > best.Population {
			selected = country.Some(c)
		}
	}
	return selected, nil
}

// FirstCountryByStartingLetter returns the first country, in source order,
// whose name starts with letter.
func (r *Repository) FirstCountryByStartingLetter(letter rune) country.Optional {
	defer r.observe("FirstCountryByStartingLetter")()

	want := string(letter)
	for _, c := range r.countries {
		if c.FirstLetter() == want {
			return country.Some(c)
		}
	}
	return country.None()
}
