package domain

import "time"

// BookingStatus represents the status of a charter booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByBroker   BookingStatus = "cancelled_by_broker"
	StatusNoShow              BookingStatus = "no_show"
)

// IsValid reports whether s is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted,
		StatusCancelledByCustomer, StatusCancelledByBroker, StatusNoShow:
		return true
	}
	return false
}

// Booking represents a yacht charter request
type Booking struct {
	ID           int64
	Reference    string // public uuid handed to the customer
	YachtID      int64
	StartAt      time.Time
	CharterHours int
	Guests       int
	Status       BookingStatus

	// Denormalized data for history
	YachtName  string
	PriceCents int64

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns the moment the charter ends
func (b *Booking) EndAt() time.Time {
	return b.StartAt.Add(time.Duration(b.CharterHours) * time.Hour)
}

// Overlaps reports whether the booking intersects [start, end).
// Touching intervals do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt().After(start)
}

// IsActive returns true if the booking is in an active state
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByCustomer &&
		b.Status != StatusCancelledByBroker &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByCustomer || b.Status == StatusCancelledByBroker
}

// CanTransitionTo reports whether an admin may move the booking to next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelledByBroker
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusNoShow || next == StatusCancelledByBroker
	}
	return false
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	YachtID         *int64         // Фильтр по яхте (опционально, если nil - все яхты)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, no-show)
}
