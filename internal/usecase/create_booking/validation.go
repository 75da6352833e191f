package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.YachtID <= 0 {
		return fmt.Errorf("%w: yachtID must be positive", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.CharterHours <= 0 {
		return fmt.Errorf("%w: charterHours must be positive", ErrInvalidInput)
	}

	if req.Guests <= 0 {
		return fmt.Errorf("%w: guests must be positive", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: customerName must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if len(req.CustomerEmail) > domain.MaxEmailLength {
		return fmt.Errorf("%w: customerEmail is too long", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(req.CustomerEmail); err != nil {
		return fmt.Errorf("%w: invalid customerEmail: %v", ErrInvalidInput, err)
	}

	if req.CustomerPhone != nil && len(*req.CustomerPhone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: customerPhone is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(startAt time.Time, now time.Time, advanceDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(startAt, now) {
		return ErrInvalidDate
	}

	// Если advanceDays = 0, нет ограничений на дату
	if advanceDays == 0 {
		return nil
	}

	maxDate := dayOf(now).AddDate(0, 0, advanceDays)
	if dayOf(startAt).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceDays)
	}

	return nil
}

// validateDeparture проверяет, что отправление попадает в сетку и чартер заканчивается до времени возврата
func validateDeparture(startAt time.Time, charterHours int) error {
	first := dayOf(startAt).Add(domain.FirstDepartureHour * time.Hour)
	last := dayOf(startAt).Add(domain.LastReturnHour * time.Hour)

	if startAt.Before(first) {
		return fmt.Errorf("%w: departures start at %02d:00", ErrInvalidTimeSlot, domain.FirstDepartureHour)
	}

	step := time.Duration(domain.DepartureStepMinutes) * time.Minute
	if startAt.Sub(first)%step != 0 {
		return fmt.Errorf("%w: departure must be aligned to %d minutes", ErrInvalidTimeSlot, domain.DepartureStepMinutes)
	}

	end := startAt.Add(time.Duration(charterHours) * time.Hour)
	if end.After(last) {
		return fmt.Errorf("%w: charter must end by %02d:00", ErrInvalidTimeSlot, domain.LastReturnHour)
	}

	return nil
}

// validateNotice проверяет, что до отправления осталось не меньше minNoticeHours
func validateNotice(startAt time.Time, now time.Time, minNoticeHours int) error {
	minAllowed := now.Add(time.Duration(minNoticeHours) * time.Hour)
	if startAt.Before(minAllowed) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, minNoticeHours)
	}
	return nil
}

// dayOf обнуляет время, оставляя дату в той же временной зоне
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dayOf(date).Before(dayOf(now))
}
