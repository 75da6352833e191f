package list_yachts

import (
	"context"

	listYachts "github.com/m04kA/SMC-CharterService/internal/usecase/list_yachts"
)

type ListYachtsUseCase interface {
	Execute(ctx context.Context, req *listYachts.Request) (*listYachts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
