package list_all_yachts

import (
	"context"

	"github.com/m04kA/SMC-CharterService/internal/service/yachts/models"
)

type YachtService interface {
	ListAll(ctx context.Context) (*models.YachtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
