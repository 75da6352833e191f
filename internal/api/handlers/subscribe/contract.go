package subscribe

import (
	"context"

	"github.com/m04kA/SMC-CharterService/internal/service/subscribers/models"
)

type SubscriberService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscriberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
