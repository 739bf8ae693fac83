package country

import "encoding/json"

// Optional holds a country that may be absent. The zero value is empty.
type Optional struct {
	value   Country
	present bool
}

// Some wraps a found country.
func Some(c Country) Optional {
	return Optional{value: c, present: true}
}

// None is the not-found result.
func None() Optional {
	return Optional{}
}

// Get returns the country and whether it was present.
func (o Optional) Get() (Country, bool) {
	return o.value, o.present
}

func (o Optional) IsPresent() bool {
	return o.present
}

// OrElse returns the wrapped country, or fallback when empty.
func (o Optional) OrElse(fallback Country) Country {
	if o.present {
		return o.value
	}
	return fallback
}

// MarshalJSON encodes an empty Optional as null.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
