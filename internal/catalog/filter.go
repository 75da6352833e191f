// Package catalog filters and paginates the yacht catalog.
//
// Everything here is a pure function over in-memory values. The listing
// page state is a FilterState plus a Pagination, serialised to the URL query
// with Encode/Decode and advanced with Reduce.
package catalog

import "slices"

// All is the sentinel meaning "this dimension imposes no constraint".
const All = "all"

// Dimension names one filter of the listing page. Dimension names double as
// URL query parameter names.
type Dimension string

const (
	DimensionLocation   Dimension = "location"
	DimensionDuration   Dimension = "duration"
	DimensionLength     Dimension = "length"
	DimensionBudget     Dimension = "budget"
	DimensionAmenities  Dimension = "amenities"
	DimensionPassengers Dimension = "passengers"
)

// Dimensions in pipeline order.
var Dimensions = []Dimension{
	DimensionLocation,
	DimensionDuration,
	DimensionLength,
	DimensionBudget,
	DimensionAmenities,
	DimensionPassengers,
}

// DurationFilter is All or a charter length in hours, e.g. "4".
type DurationFilter string

const DurationAll DurationFilter = All

// LengthRange buckets yachts by length in feet.
type LengthRange string

const (
	LengthAll    LengthRange = All
	LengthUpTo50 LengthRange = "0-50"
	Length50To90 LengthRange = "50-90"
	LengthOver90 LengthRange = "90+"
)

// BudgetRange buckets yachts by starting price in whole currency units.
type BudgetRange string

const (
	BudgetAll          BudgetRange = All
	BudgetUpTo5000     BudgetRange = "0-5000"
	Budget5000To10000  BudgetRange = "5000-10000"
	Budget10000To15000 BudgetRange = "10000-15000"
)

// PassengerCount is the minimum number of guests a yacht must take.
type PassengerCount string

const (
	PassengersAll    PassengerCount = All
	Passengers2      PassengerCount = "2"
	Passengers4      PassengerCount = "4"
	Passengers6      PassengerCount = "6"
	Passengers8      PassengerCount = "8"
	Passengers10Plus PassengerCount = "10+"
)

// LengthRanges, BudgetRanges and PassengerCounts list the values offered by
// the listing page controls.
var (
	LengthRanges    = []LengthRange{LengthUpTo50, Length50To90, LengthOver90}
	BudgetRanges    = []BudgetRange{BudgetUpTo5000, Budget5000To10000, Budget10000To15000}
	PassengerCounts = []PassengerCount{Passengers2, Passengers4, Passengers6, Passengers8, Passengers10Plus}
)

// FilterState is the set of filters selected on the listing page.
//
// The zero value selects everything: an empty dimension is the same as All.
// Values outside the known set are kept as is and match no yacht.
type FilterState struct {
	Location   string
	Duration   DurationFilter
	Length     LengthRange
	Budget     BudgetRange
	Passengers PassengerCount
	// Amenities required on a yacht. Nil, empty and ["all"] select everything.
	Amenities []string
}

// NewFilterState returns a state with every dimension set to All.
func NewFilterState() FilterState {
	return FilterState{
		Location:   All,
		Duration:   DurationAll,
		Length:     LengthAll,
		Budget:     BudgetAll,
		Passengers: PassengersAll,
	}
}

func isAll(v string) bool {
	return v == "" || v == All
}

// requiredAmenities drops the All sentinel and blanks from the selection.
func requiredAmenities(codes []string) []string {
	var out []string
	for _, c := range codes {
		if !isAll(c) {
			out = append(out, c)
		}
	}
	return out
}

// With returns a copy of s with one dimension replaced. Single valued
// dimensions take the first value, or All when values is empty. An unknown
// dimension leaves the state unchanged and reports false.
func (s FilterState) With(dim Dimension, values ...string) (FilterState, bool) {
	first := All
	if len(values) > 0 {
		first = values[0]
	}

	switch dim {
	case DimensionLocation:
		s.Location = first
	case DimensionDuration:
		s.Duration = DurationFilter(first)
	case DimensionLength:
		s.Length = LengthRange(first)
	case DimensionBudget:
		s.Budget = BudgetRange(first)
	case DimensionPassengers:
		s.Passengers = PassengerCount(first)
	case DimensionAmenities:
		s.Amenities = slices.Clone(values)
	default:
		return s, false
	}
	return s, true
}

// Value returns the selection of one dimension as strings.
func (s FilterState) Value(dim Dimension) []string {
	switch dim {
	case DimensionLocation:
		return []string{s.Location}
	case DimensionDuration:
		return []string{string(s.Duration)}
	case DimensionLength:
		return []string{string(s.Length)}
	case DimensionBudget:
		return []string{string(s.Budget)}
	case DimensionPassengers:
		return []string{string(s.Passengers)}
	case DimensionAmenities:
		return slices.Clone(s.Amenities)
	}
	return nil
}

// IsActive reports whether the dimension constrains the result.
func (s FilterState) IsActive(dim Dimension) bool {
	if dim == DimensionAmenities {
		return len(requiredAmenities(s.Amenities)) > 0
	}
	v := s.Value(dim)
	return len(v) == 1 && !isAll(v[0])
}

// ActiveDimensions lists the constraining dimensions in pipeline order.
func (s FilterState) ActiveDimensions() []Dimension {
	var out []Dimension
	for _, d := range Dimensions {
		if s.IsActive(d) {
			out = append(out, d)
		}
	}
	return out
}

// Normalize returns the canonical form of s: blanks become All and the
// amenity selection becomes a sorted set without the All sentinel, nil when
// nothing is required.
func (s FilterState) Normalize() FilterState {
	norm := func(v string) string {
		if isAll(v) {
			return All
		}
		return v
	}

	out := FilterState{
		Location:   norm(s.Location),
		Duration:   DurationFilter(norm(string(s.Duration))),
		Length:     LengthRange(norm(string(s.Length))),
		Budget:     BudgetRange(norm(string(s.Budget))),
		Passengers: PassengerCount(norm(string(s.Passengers))),
	}

	if req := requiredAmenities(s.Amenities); len(req) > 0 {
		slices.Sort(req)
		out.Amenities = slices.Compact(req)
	}
	return out
}

// Equal reports whether a and b select the same yachts by definition, i.e.
// their canonical forms match.
func (s FilterState) Equal(other FilterState) bool {
	a, b := s.Normalize(), other.Normalize()
	return a.Location == b.Location &&
		a.Duration == b.Duration &&
		a.Length == b.Length &&
		a.Budget == b.Budget &&
		a.Passengers == b.Passengers &&
		slices.Equal(a.Amenities, b.Amenities)
}

// String is the canonical query string of s.
func (s FilterState) String() string {
	return s.QueryString()
}
