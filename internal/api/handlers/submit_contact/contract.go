package submit_contact

import (
	"context"

	"github.com/m04kA/SMC-CharterService/internal/service/contacts/models"
)

type ContactService interface {
	Submit(ctx context.Context, req *models.SubmitRequest) (*models.ContactMessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
