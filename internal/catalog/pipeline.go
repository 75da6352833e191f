package catalog

import "github.com/m04kA/SMC-CharterService/internal/domain"

type predicate func(y *domain.Yacht, s *FilterState) bool

// Filter returns the yachts passing every active filter of s, in their
// original order. The input slice is not modified.
func Filter(yachts []domain.Yacht, s FilterState) []domain.Yacht {
	pipeline := [...]predicate{
		func(y *domain.Yacht, s *FilterState) bool { return MatchLocation(y, s.Location) },
		func(y *domain.Yacht, s *FilterState) bool { return MatchDuration(y, s.Duration) },
		func(y *domain.Yacht, s *FilterState) bool { return MatchLength(y, s.Length) },
		func(y *domain.Yacht, s *FilterState) bool { return MatchBudget(y, s.Budget) },
		func(y *domain.Yacht, s *FilterState) bool { return MatchAmenities(y, s.Amenities) },
		func(y *domain.Yacht, s *FilterState) bool { return MatchPassengers(y, s.Passengers) },
	}

	out := make([]domain.Yacht, 0, len(yachts))
next:
	for i := range yachts {
		for _, match := range pipeline {
			if !match(&yachts[i], &s) {
				continue next
			}
		}
		out = append(out, yachts[i])
	}
	return out
}

// Matches reports whether a single yacht passes s.
func Matches(y *domain.Yacht, s FilterState) bool {
	return MatchLocation(y, s.Location) &&
		MatchDuration(y, s.Duration) &&
		MatchLength(y, s.Length) &&
		MatchBudget(y, s.Budget) &&
		MatchAmenities(y, s.Amenities) &&
		MatchPassengers(y, s.Passengers)
}
