package get_yacht_availability

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.YachtID <= 0 {
		return fmt.Errorf("%w: yachtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.CharterHours <= 0 {
		return fmt.Errorf("%w: hours must be positive", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(date time.Time, now time.Time, advanceDays int) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}

	if advanceDays == 0 {
		return nil
	}

	maxDate := dayOf(now).AddDate(0, 0, advanceDays)
	if dayOf(date).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceDays)
	}

	return nil
}
