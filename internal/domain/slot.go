package domain

import "time"

// AvailableSlot is a departure time of a yacht for one charter length
type AvailableSlot struct {
	StartAt      time.Time
	CharterHours int
	PriceCents   int64
	Available    bool
}

// EndAt returns the moment the charter would end
func (s *AvailableSlot) EndAt() time.Time {
	return s.StartAt.Add(time.Duration(s.CharterHours) * time.Hour)
}
