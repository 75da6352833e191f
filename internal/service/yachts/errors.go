package yachts

import "errors"

var (
	// ErrYachtNotFound возвращается, когда яхта не найдена
	ErrYachtNotFound = errors.New("yacht not found")

	// ErrSlugTaken возвращается, когда slug уже занят другой яхтой
	ErrSlugTaken = errors.New("slug already taken")

	// ErrHasBookings возвращается при удалении яхты с бронированиями
	ErrHasBookings = errors.New("yacht has bookings")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
