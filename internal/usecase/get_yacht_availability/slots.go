package get_yacht_availability

import (
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// generateDepartures генерирует отправления на день с шагом DepartureStepMinutes
// Чартер должен закончиться не позже LastReturnHour
// На сегодня и ближайшие дни отбрасываются отправления раньше now + minNoticeHours
func generateDepartures(date time.Time, charterHours int, now time.Time, minNoticeHours int) []time.Time {
	if isDateInPast(date, now) {
		return []time.Time{}
	}

	day := dayOf(date)
	first := day.Add(domain.FirstDepartureHour * time.Hour)
	last := day.Add(domain.LastReturnHour * time.Hour)
	step := time.Duration(domain.DepartureStepMinutes) * time.Minute
	length := time.Duration(charterHours) * time.Hour
	minAllowed := now.Add(time.Duration(minNoticeHours) * time.Hour)

	departures := make([]time.Time, 0)
	for start := first; !start.Add(length).After(last); start = start.Add(step) {
		if start.Before(minAllowed) {
			continue
		}
		departures = append(departures, start)
	}

	return departures
}

// markAvailability отмечает отправления, которые не пересекаются с активными бронированиями
// Граничащие интервалы не считаются пересечением
func markAvailability(departures []time.Time, charterHours int, priceCents int64, bookings []*domain.Booking) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(departures))
	length := time.Duration(charterHours) * time.Hour

	for i, start := range departures {
		available := true
		for _, booking := range bookings {
			if booking.IsActive() && booking.Overlaps(start, start.Add(length)) {
				available = false
				break
			}
		}

		result[i] = domain.AvailableSlot{
			StartAt:      start,
			CharterHours: charterHours,
			PriceCents:   priceCents,
			Available:    available,
		}
	}

	return result
}

// dayOf обнуляет время, оставляя дату в той же временной зоне
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return dayOf(date).Before(dayOf(now))
}
