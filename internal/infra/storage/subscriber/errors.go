package subscriber

import "errors"

var (
	// ErrSubscriberNotFound возвращается, когда подписчик не найден
	ErrSubscriberNotFound = errors.New("subscriber.repository: subscriber not found")

	// ErrAlreadyExists возвращается, когда email уже подписан
	ErrAlreadyExists = errors.New("subscriber.repository: subscriber already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("subscriber.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("subscriber.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("subscriber.repository: failed to scan row")
)
