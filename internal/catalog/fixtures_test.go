package catalog

import "github.com/m04kA/SMC-CharterService/internal/domain"

func fleet() []domain.Yacht {
	return []domain.Yacht{
		{
			ID: 1, Name: "Sea Breeze",
			Location:      domain.Location{City: "Miami", Country: "United States"},
			LengthFeet:    45,
			GuestCapacity: 6,
			PriceTiers:    []domain.PriceTier{{CharterHours: 4, RetailCents: 250000}, {CharterHours: 8, RetailCents: 400000}},
			AmenityCodes:  []string{"jacuzzi"},
		},
		{
			ID: 2, Name: "Blue Horizon",
			Location:      domain.Location{City: "Fort Lauderdale", Country: "United States"},
			LengthFeet:    50,
			GuestCapacity: 10,
			PriceTiers:    []domain.PriceTier{{CharterHours: 4, RetailCents: 500000}},
			AmenityCodes:  []string{"jacuzzi", "jet_ski", "kayak"},
		},
		{
			ID: 3, Name: "Aurora",
			Location:      domain.Location{City: "Nassau", Country: "Bahamas"},
			LengthFeet:    90,
			GuestCapacity: 8,
			PriceTiers:    []domain.PriceTier{{CharterHours: 6, RetailCents: 750000}, {CharterHours: 8, RetailCents: 900000}},
			AmenityCodes:  []string{"jet_ski"},
		},
		{
			ID: 4, Name: "Leviathan",
			Location:      domain.Location{City: "Saint-Tropez", Country: "France"},
			LengthFeet:    120,
			GuestCapacity: 12,
			PriceTiers:    []domain.PriceTier{{CharterHours: 8, RetailCents: 1400000}},
			AmenityCodes:  []string{"jacuzzi", "jet_ski", "kayak", "chef"},
		},
		{
			ID: 5, Name: "Unlisted",
		},
		{
			ID: 6, Name: "Kestrel",
			Location:      domain.Location{City: "Miami Beach", Country: "United States"},
			LengthFeet:    72,
			GuestCapacity: 7,
			PriceTiers:    []domain.PriceTier{{CharterHours: 4, RetailCents: 600000}},
			AmenityCodes:  []string{"kayak"},
		},
	}
}

func ids(yachts []domain.Yacht) []int64 {
	out := make([]int64, 0, len(yachts))
	for _, y := range yachts {
		out = append(out, y.ID)
	}
	return out
}

// sampleStates covers every dimension value, a few combinations and some
// garbage.
func sampleStates() []FilterState {
	states := []FilterState{{}, NewFilterState()}

	base := NewFilterState()
	for _, loc := range []string{"miami", "Fort Lauderdale", "BAHAMAS", "nowhere"} {
		s, _ := base.With(DimensionLocation, loc)
		states = append(states, s)
	}
	for _, d := range []string{"4", "6", "8", "five"} {
		s, _ := base.With(DimensionDuration, d)
		states = append(states, s)
	}
	for _, r := range append(LengthRanges, "foo") {
		s, _ := base.With(DimensionLength, string(r))
		states = append(states, s)
	}
	for _, r := range append(BudgetRanges, "cheap") {
		s, _ := base.With(DimensionBudget, string(r))
		states = append(states, s)
	}
	for _, p := range PassengerCounts {
		s, _ := base.With(DimensionPassengers, string(p))
		states = append(states, s)
	}
	for _, a := range [][]string{{"jacuzzi"}, {"jacuzzi", "jet_ski"}, {"all"}, {"chef", "kayak"}} {
		s, _ := base.With(DimensionAmenities, a...)
		states = append(states, s)
	}

	states = append(states,
		FilterState{Location: "miami", Duration: "4", Length: Length50To90},
		FilterState{Budget: BudgetUpTo5000, Passengers: Passengers6, Amenities: []string{"jacuzzi"}},
		FilterState{Location: "united", Length: LengthUpTo50, Amenities: []string{"kayak", "jet_ski"}},
	)
	return states
}
