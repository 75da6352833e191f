package notifier

import "errors"

var (
	// ErrConnect возвращается, когда не удалось подключиться к брокеру
	ErrConnect = errors.New("notifier: failed to connect to broker")

	// ErrMarshal возвращается, когда событие не сериализуется в JSON
	ErrMarshal = errors.New("notifier: failed to marshal event")

	// ErrPublish возвращается, когда брокер не принял сообщение
	ErrPublish = errors.New("notifier: failed to publish event")
)
