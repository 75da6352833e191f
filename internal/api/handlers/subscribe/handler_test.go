package subscribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CharterService/internal/service/subscribers"
	"github.com/m04kA/SMC-CharterService/internal/service/subscribers/models"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
)

type fakeService struct{ err error }

func (f fakeService) Subscribe(_ context.Context, req *models.SubscribeRequest) (*models.SubscriberResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.SubscriberResponse{ID: 1, Email: req.Email}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"created", `{"email":"ann@example.com"}`, nil, http.StatusCreated},
		{"bad body", `email=ann`, nil, http.StatusBadRequest},
		{"invalid email", `{"email":"ann"}`, subscribers.ErrInvalidInput, http.StatusBadRequest},
		{"duplicate", `{"email":"ann@example.com"}`, subscribers.ErrAlreadySubscribed, http.StatusConflict},
		{"internal", `{"email":"ann@example.com"}`, subscribers.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/subscribers", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			NewHandler(fakeService{err: tt.err}, logger.NewNop()).Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
