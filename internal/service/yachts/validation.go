package yachts

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/service/yachts/models"
)

// slugPattern совпадает со схемой датасета
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateYachtRequest валидирует данные яхты
func validateYachtRequest(req *models.YachtRequest) error {
	if !slugPattern.MatchString(req.Slug) {
		return fmt.Errorf("%w: slug must be lowercase words joined by '-'", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxYachtNameLength {
		return fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxYachtNameLength)
	}

	if req.LengthFeet < 0 || req.GuestCapacity < 0 || req.Cabins < 0 {
		return fmt.Errorf("%w: lengthFeet, guestCapacity and cabins must not be negative", ErrInvalidInput)
	}

	seen := make(map[int]struct{}, len(req.PriceTiers))
	for _, t := range req.PriceTiers {
		if t.CharterHours <= 0 || t.RetailCents < 0 {
			return fmt.Errorf("%w: price tier needs positive hours and non-negative price", ErrInvalidInput)
		}
		if _, dup := seen[t.CharterHours]; dup {
			return fmt.Errorf("%w: duplicate %dh price tier", ErrInvalidInput, t.CharterHours)
		}
		seen[t.CharterHours] = struct{}{}
	}

	return nil
}
