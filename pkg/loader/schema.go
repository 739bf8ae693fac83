package loader

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/sanonone/countrydb/pkg/country"
)

// record is the on-disk shape of a country. Fields without omitempty are
// required by the derived schema.
type record struct {
	Code       string  `json:"code" jsonschema:"unique country code"`
	Name       string  `json:"name" jsonschema:"display name"`
	Capital    string  `json:"capital" jsonschema:"capital city"`
	Region     string  `json:"region" jsonschema:"one of the six regions"`
	Population int64   `json:"population" jsonschema:"number of inhabitants"`
	Area       float64 `json:"area" jsonschema:"area in square kilometres"`
}

func (r record) toCountry() (country.Country, error) {
	region, err := country.ParseRegion(r.Region)
	if err != nil {
		return country.Country{}, err
	}
	return country.Country{
		Code:       r.Code,
		Name:       r.Name,
		Capital:    r.Capital,
		Region:     region,
		Population: r.Population,
		Area:       r.Area,
	}, nil
}

// recordSchema derives the JSON Schema for record and tightens it with the
// constraints the Go types cannot express.
func recordSchema() (*jsonschema.Resolved, error) {
	schema, err := jsonschema.For[record](nil)
	if err != nil {
		return nil, fmt.Errorf("failed to derive record schema: %w", err)
	}

	one := 1
	zero := 0.0
	schema.Properties["code"].MinLength = &one
	schema.Properties["name"].MinLength = &one
	schema.Properties["population"].Minimum = &zero
	schema.Properties["area"].Minimum = &zero

	regions := make([]any, 0, len(country.Regions()))
	for _, name := range country.RegionNames() {
		regions = append(regions, name)
	}
	schema.Properties["region"].Enum = regions

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve record schema: %w", err)
	}
	return resolved, nil
}
