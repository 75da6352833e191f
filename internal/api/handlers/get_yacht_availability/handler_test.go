package get_yacht_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	getAvailability "github.com/m04kA/SMC-CharterService/internal/usecase/get_yacht_availability"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
)

type fakeUseCase struct{}

func (fakeUseCase) Execute(_ context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	if req.CharterHours != 4 {
		return nil, getAvailability.ErrTierNotOffered
	}
	start := req.Date.Add(18 * time.Hour)
	return &getAvailability.Response{
		Date:         req.Date,
		YachtID:      req.YachtID,
		CharterHours: 4,
		PriceCents:   320000,
		Slots:        []domain.AvailableSlot{{StartAt: start, CharterHours: 4, Available: true}},
	}, nil
}

func serve(url string) *httptest.ResponseRecorder {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, url, nil), map[string]string{"yachtId": "1"})
	rec := httptest.NewRecorder()
	NewHandler(fakeUseCase{}, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve("/api/v1/yachts/1/availability?date=2026-06-10&hours=4")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-06-10", body.Date)
	assert.Equal(t, []Departure{{StartTime: "18:00", EndTime: "22:00", Available: true}}, body.Departures)
}

func TestHandle_BadRequests(t *testing.T) {
	for _, url := range []string{
		"/api/v1/yachts/1/availability?hours=4",
		"/api/v1/yachts/1/availability?date=10.06.2026&hours=4",
		"/api/v1/yachts/1/availability?date=2026-06-10&hours=four",
		"/api/v1/yachts/1/availability?date=2026-06-10&hours=6",
	} {
		assert.Equal(t, http.StatusBadRequest, serve(url).Code, url)
	}
}
