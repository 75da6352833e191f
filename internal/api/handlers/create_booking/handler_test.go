package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/SMC-CharterService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		ID:           7,
		Reference:    "2f1d7a4e-8f64-4c43-9f39-3c1b5e0b2a11",
		YachtID:      req.YachtID,
		StartAt:      req.StartAt,
		EndAt:        req.StartAt.Add(time.Duration(req.CharterHours) * time.Hour),
		CharterHours: req.CharterHours,
		Guests:       req.Guests,
		Status:       "pending",
		YachtName:    "Sea Breeze",
		PriceCents:   320000,
	}, nil
}

const validBody = `{"yachtId":1,"bookingDate":"2026-06-10","startTime":"10:00","charterHours":4,"guests":6,"customerName":"Ann","customerEmail":"ann@example.com"}`

func post(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	rec := post(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, time.Date(2026, 6, 10, 10, 0, 0, 0, time.UTC), uc.got.StartAt)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "14:00", resp.EndTime)
	assert.Equal(t, "2026-06-10", resp.BookingDate)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"malformed json", `{"yachtId":`, nil, http.StatusBadRequest},
		{"unknown field", `{"companyId":1}`, nil, http.StatusBadRequest},
		{"bad time", strings.Replace(validBody, "10:00", "10am", 1), nil, http.StatusBadRequest},
		{"slot taken", validBody, createBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"yacht missing", validBody, createBooking.ErrYachtNotFound, http.StatusNotFound},
		{"too many guests", validBody, createBooking.ErrTooManyGuests, http.StatusBadRequest},
		{"internal", validBody, createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
