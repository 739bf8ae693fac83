package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sanonone/countrydb/pkg/country"
)

var (
	// ErrEmptyDataset is returned by extremum and average queries when the
	// repository holds no records.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrInvalidArgument is returned for malformed input such as a blank code
	// or a region outside the enumeration.
	ErrInvalidArgument = errors.New("invalid argument")
)

func checkRegion(region country.Region) error {
	if !region.Valid() {
		return fmt.Errorf("%w: region %d is not a known region", ErrInvalidArgument, int(region))
	}
	return nil
}

func checkCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be blank", ErrInvalidArgument)
	}
	return nil
}
