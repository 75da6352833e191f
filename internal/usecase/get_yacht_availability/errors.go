package get_yacht_availability

import "errors"

var (
	// ErrYachtNotFound возвращается, когда яхта не найдена или не опубликована
	ErrYachtNotFound = errors.New("yacht not found")

	// ErrTierNotOffered возвращается, когда яхта не сдается на указанное число часов
	ErrTierNotOffered = errors.New("charter length is not offered for this yacht")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceDays
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
