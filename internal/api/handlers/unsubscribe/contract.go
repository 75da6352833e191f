package unsubscribe

import "context"

type SubscriberService interface {
	Unsubscribe(ctx context.Context, email string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
