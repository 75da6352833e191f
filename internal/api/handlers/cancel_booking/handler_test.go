package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/internal/service/bookings"
	"github.com/m04kA/SMC-CharterService/internal/service/bookings/models"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
)

type fakeService struct {
	got *models.CancelBookingRequest
	err error
}

func (f *fakeService) Cancel(_ context.Context, _ string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: 3, Status: "cancelled_by_customer"}, nil
}

func patch(svc *fakeService, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/ref/cancel", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"reference": "ref"})
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}
	rec := patch(svc, `{"email":"ann@example.com","cancellationReason":"  "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann@example.com", svc.got.Email)
	assert.Nil(t, svc.got.CancellationReason)
	assert.Contains(t, rec.Body.String(), "cancelled_by_customer")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad body", `[]`, nil, http.StatusBadRequest},
		{"bad reference", `{"email":"a@b.c"}`, bookings.ErrInvalidInput, http.StatusBadRequest},
		{"not found", `{"email":"a@b.c"}`, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"wrong email", `{"email":"a@b.c"}`, bookings.ErrAccessDenied, http.StatusForbidden},
		{"already cancelled", `{"email":"a@b.c"}`, bookings.ErrCannotCancel, http.StatusConflict},
		{"internal", `{"email":"a@b.c"}`, bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, patch(&fakeService{err: tt.err}, tt.body).Code)
		})
	}
}
