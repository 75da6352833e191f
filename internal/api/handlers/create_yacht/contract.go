package create_yacht

import (
	"context"

	"github.com/m04kA/SMC-CharterService/internal/service/yachts/models"
)

type YachtService interface {
	Create(ctx context.Context, req *models.YachtRequest) (*models.YachtResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
