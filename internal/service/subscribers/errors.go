package subscribers

import "errors"

var (
	// ErrAlreadySubscribed возвращается при повторной подписке
	ErrAlreadySubscribed = errors.New("already subscribed")

	// ErrSubscriberNotFound возвращается при отписке неизвестного email
	ErrSubscriberNotFound = errors.New("subscriber not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
