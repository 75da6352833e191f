package catalog

import (
	"net/url"
	"strings"
)

// Encode maps s to URL query parameters. Dimensions at All are omitted and
// amenities become one repeated parameter per code.
func Encode(s FilterState) url.Values {
	v := url.Values{}

	set := func(dim Dimension, value string) {
		if !isAll(value) {
			v.Set(string(dim), value)
		}
	}
	set(DimensionLocation, s.Location)
	set(DimensionDuration, string(s.Duration))
	set(DimensionLength, string(s.Length))
	set(DimensionBudget, string(s.Budget))
	set(DimensionPassengers, string(s.Passengers))

	for _, code := range requiredAmenities(s.Amenities) {
		v.Add(string(DimensionAmenities), code)
	}
	return v
}

// Decode reads the filter parameters of a query. A missing or empty
// parameter means All; other parameters are ignored.
func Decode(v url.Values) FilterState {
	get := func(dim Dimension) string {
		if value := v.Get(string(dim)); value != "" {
			return value
		}
		return All
	}

	return FilterState{
		Location:   get(DimensionLocation),
		Duration:   DurationFilter(get(DimensionDuration)),
		Length:     LengthRange(get(DimensionLength)),
		Budget:     BudgetRange(get(DimensionBudget)),
		Passengers: PassengerCount(get(DimensionPassengers)),
		Amenities:  requiredAmenities(v[string(DimensionAmenities)]),
	}
}

// DecodeString parses a raw query string, with or without the leading "?".
func DecodeString(raw string) (FilterState, error) {
	v, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return NewFilterState(), err
	}
	return Decode(v), nil
}

// QueryString is the encoded query of s with parameters sorted by name.
func (s FilterState) QueryString() string {
	return Encode(s).Encode()
}
