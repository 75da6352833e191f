package catalog

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// fold lower-cases s with Unicode case folding. A Caser must not be shared
// between goroutines, so every call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// MatchLocation passes when the fragment, case folded and with whitespace
// removed, is contained in the yacht's city, its country or its city with
// whitespace removed.
func MatchLocation(y *domain.Yacht, fragment string) bool {
	if isAll(fragment) {
		return true
	}

	needle := stripSpaces(fold(fragment))
	city := fold(y.Location.City)
	country := fold(y.Location.Country)

	return strings.Contains(city, needle) ||
		strings.Contains(country, needle) ||
		strings.Contains(stripSpaces(city), needle)
}

// MatchDuration passes when any price tier has exactly the requested number
// of charter hours.
func MatchDuration(y *domain.Yacht, d DurationFilter) bool {
	if isAll(string(d)) {
		return true
	}

	hours, err := strconv.Atoi(string(d))
	if err != nil {
		return false
	}

	_, ok := y.TierByHours(hours)
	return ok
}

// MatchLength buckets are (.., 50], (50, 90] and (90, ..).
func MatchLength(y *domain.Yacht, r LengthRange) bool {
	l := y.LengthFeet

	switch r {
	case LengthAll, "":
		return true
	case LengthUpTo50:
		return l <= 50
	case Length50To90:
		return l > 50 && l <= 90
	case LengthOver90:
		return l > 90
	}
	return false
}

// MatchBudget compares the starting price, the first tier or 0, against
// [0, 5000], (5000, 10000] and (10000, 15000].
func MatchBudget(y *domain.Yacht, r BudgetRange) bool {
	price := y.StartingPrice()

	switch r {
	case BudgetAll, "":
		return true
	case BudgetUpTo5000:
		return price >= 0 && price <= 5000
	case Budget5000To10000:
		return price > 5000 && price <= 10000
	case Budget10000To15000:
		return price > 10000 && price <= 15000
	}
	return false
}

// MatchAmenities passes when the yacht has every selected amenity.
func MatchAmenities(y *domain.Yacht, codes []string) bool {
	for _, code := range codes {
		if isAll(code) {
			continue
		}
		if !y.HasAmenity(code) {
			return false
		}
	}
	return true
}

// MatchPassengers passes when the yacht takes at least the selected number
// of guests.
func MatchPassengers(y *domain.Yacht, p PassengerCount) bool {
	if isAll(string(p)) {
		return true
	}
	if p == Passengers10Plus {
		return y.GuestCapacity >= 10
	}

	n, err := strconv.Atoi(string(p))
	if err != nil {
		return false
	}
	return y.GuestCapacity >= n
}
