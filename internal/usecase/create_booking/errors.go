package create_booking

import "errors"

var (
	// ErrYachtNotFound возвращается, когда яхта не найдена или не опубликована
	ErrYachtNotFound = errors.New("create_booking: yacht not found")

	// ErrTierNotOffered возвращается, когда яхта не сдается на указанное число часов
	ErrTierNotOffered = errors.New("create_booking: charter length is not offered for this yacht")

	// ErrTooManyGuests возвращается, когда гостей больше вместимости яхты
	ErrTooManyGuests = errors.New("create_booking: too many guests for this yacht")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда время отправления не попадает в сетку или чартер выходит за время возврата
	ErrInvalidTimeSlot = errors.New("create_booking: invalid departure time")

	// ErrTooLateToBook возвращается, когда до отправления меньше minNoticeHours
	ErrTooLateToBook = errors.New("create_booking: too late to book this departure")

	// ErrSlotNotAvailable возвращается, когда яхта уже занята на это время
	ErrSlotNotAvailable = errors.New("create_booking: yacht is not available at this time")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
