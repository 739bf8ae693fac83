package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sanonone/countrydb/pkg/country"
	"github.com/sanonone/countrydb/pkg/query"
)

type reportArgs struct {
	Code string
}

type reportFunc func(repo *query.Repository, args reportArgs) (any, error)

var reports = map[string]reportFunc{
	"summary":            summaryReport,
	"by-region":          byRegionReport,
	"most-populous":      mostPopulousReport,
	"by-letter":          byLetterReport,
	"stats":              statsReport,
	"sorted-capitals":    sortedCapitalsReport,
	"capitals-by-length": capitalsByLengthReport,
	"lookup":             lookupReport,
}

func reportNames() string {
	names := make([]string, 0, len(reports))
	for name := range reports {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

type summary struct {
	Countries          int             `json:"countries"`
	EuropeanCountries  int64           `json:"european_countries"`
	MaximumPopulation  int64           `json:"maximum_population"`
	MinimumPopulation  int64           `json:"minimum_population"`
	AveragePopulation  float64         `json:"average_population"`
	LargestCountry     country.Country `json:"largest_country"`
	DistinctCodes      int             `json:"distinct_codes"`
}

func summaryReport(repo *query.Repository, _ reportArgs) (any, error) {
	s := summary{
		Countries:          repo.Len(),
		EuropeanCountries:  repo.CountOfEuropeanCountries(),
		DistinctCodes:      len(repo.CountriesByCodes()),
	}
	var err error
	if s.MaximumPopulation, err = repo.MaximumPopulation(); err != nil {
		return nil, err
	}
	if s.MinimumPopulation, err = repo.MinimumPopulation(); err != nil {
		return nil, err
	}
	if s.AveragePopulation, err = repo.AveragePopulation(); err != nil {
		return nil, err
	}
	if s.LargestCountry, err = repo.LargestCountryByArea(); err != nil {
		return nil, err
	}
	return s, nil
}

type regionRow struct {
	Region     country.Region `json:"region"`
	Countries  int64          `json:"countries"`
	Population int64          `json:"population"`
	Names      []string       `json:"names"`
}

func byRegionReport(repo *query.Repository, _ reportArgs) (any, error) {
	counts := repo.CountOfCountriesByRegions()
	rows := make([]regionRow, 0, len(counts))
	for _, region := range country.Regions() {
		population, err := repo.PopulationByRegion(region)
		if err != nil {
			return nil, err
		}
		names, err := repo.NamesOfCountriesByRegion(region)
		if err != nil {
			return nil, err
		}
		rows = append(rows, regionRow{
			Region:     region,
			Countries:  counts[region],
			Population: population,
			Names:      names,
		})
	}
	return rows, nil
}

func mostPopulousReport(repo *query.Repository, _ reportArgs) (any, error) {
	return repo.MostPopulousCountryByRegions(), nil
}

func byLetterReport(repo *query.Repository, _ reportArgs) (any, error) {
	return repo.CountriesByFirstLettersAndRegions(), nil
}

func statsReport(repo *query.Repository, _ reportArgs) (any, error) {
	return repo.PopulationStatistics()
}

func sortedCapitalsReport(repo *query.Repository, _ reportArgs) (any, error) {
	return repo.CapitalsOrderByName(), nil
}

func capitalsByLengthReport(repo *query.Repository, _ reportArgs) (any, error) {
	return repo.CountriesOrderByCapitalLengthThenPopulationDesc(), nil
}

var errNotFound = errors.New("country not found")

func lookupReport(repo *query.Repository, args reportArgs) (any, error) {
	opt, err := repo.CountryByCode(args.Code)
	if err != nil {
		return nil, err
	}
	c, ok := opt.Get()
	if !ok {
		return nil, fmt.Errorf("%w: %s", errNotFound, args.Code)
	}
	return c, nil
}
