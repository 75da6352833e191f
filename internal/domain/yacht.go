package domain

import "time"

// Location is where a yacht is based. Both fields may be empty.
type Location struct {
	City    string
	Country string
}

// PriceTier is one charter package of a yacht. The first tier of a yacht is
// its starting price.
type PriceTier struct {
	CharterHours int
	RetailCents  int64
}

// Yacht is a listing in the charter catalog.
type Yacht struct {
	ID            int64
	Slug          string
	Name          string
	Description   string
	Location      Location
	LengthFeet    float64 // 0 when unknown
	GuestCapacity int     // 0 when unknown
	Cabins        int
	PriceTiers    []PriceTier
	AmenityCodes  []string
	ImageURLs     []string
	IsPublished   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StartingPriceCents returns the retail price of the first tier, or 0 when
// the yacht has no tiers.
func (y *Yacht) StartingPriceCents() int64 {
	if len(y.PriceTiers) == 0 {
		return 0
	}
	return y.PriceTiers[0].RetailCents
}

// StartingPrice returns the starting price in whole currency units.
func (y *Yacht) StartingPrice() float64 {
	return float64(y.StartingPriceCents()) / 100
}

// HasAmenity reports whether the yacht lists the amenity code.
func (y *Yacht) HasAmenity(code string) bool {
	for _, c := range y.AmenityCodes {
		if c == code {
			return true
		}
	}
	return false
}

// TierByHours returns the price tier offered for the given charter length.
func (y *Yacht) TierByHours(hours int) (PriceTier, bool) {
	for _, t := range y.PriceTiers {
		if t.CharterHours == hours {
			return t, true
		}
	}
	return PriceTier{}, false
}

// LocationSummary is a distinct city/country pair with the number of
// published yachts based there.
type LocationSummary struct {
	City       string
	Country    string
	YachtCount int
}
