package domain

// Default configuration values
const (
	DefaultItemsPerPage       = 12
	DefaultAdvanceBookingDays = 365
	DefaultMinNoticeHours     = 24
)

// Departure grid used when building availability of a yacht
const (
	FirstDepartureHour   = 8
	LastReturnHour       = 22
	DepartureStepMinutes = 60
)

// Business validation constants
const (
	MaxItemsPerPage             = 60
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxNameLength               = 120
	MaxEmailLength              = 254
	MaxPhoneLength              = 32
	MaxSubjectLength            = 200
	MaxMessageLength            = 5000
	MaxYachtNameLength          = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Используется для фильтрации при проверке пересечений
var InactiveStatuses = []BookingStatus{
	StatusCancelledByCustomer,
	StatusCancelledByBroker,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
