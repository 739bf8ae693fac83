package country

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRegion is returned when a region name does not match any member
// of the enumeration.
var ErrUnknownRegion = errors.New("unknown region")

// Region is the closed set of groupings a country belongs to.
type Region int

const (
	Africa Region = iota
	Americas
	Asia
	Europe
	Oceania
	Polar
)

var regionNames = [...]string{
	Africa:   "Africa",
	Americas: "Americas",
	Asia:     "Asia",
	Europe:   "Europe",
	Oceania:  "Oceania",
	Polar:    "Polar",
}

// Regions returns every region in declaration order.
func Regions() []Region {
	return []Region{Africa, Americas, Asia, Europe, Oceania, Polar}
}

// Valid reports whether r is a member of the enumeration.
func (r Region) Valid() bool {
	return r >= Africa && r <= Polar
}

func (r Region) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Region(%d)", int(r))
	}
	return regionNames[r]
}

// ParseRegion maps a display name (case-insensitive) to its Region.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	for _, r := range Regions() {
		if strings.EqualFold(regionNames[r], s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, s)
}

// MarshalText encodes the region as its display name.
func (r Region) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRegion, int(r))
	}
	return []byte(regionNames[r]), nil
}

// UnmarshalText decodes a display name. Both encoding/json and yaml.v3 use it.
func (r *Region) UnmarshalText(text []byte) error {
	parsed, err := ParseRegion(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// RegionNames returns the display names in declaration order.
func RegionNames() []string {
	names := make([]string, 0, len(regionNames))
	for _, r := range Regions() {
		names = append(names, regionNames[r])
	}
	return names
}
