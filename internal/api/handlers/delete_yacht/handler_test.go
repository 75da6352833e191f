package delete_yacht

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CharterService/internal/service/yachts"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
)

type fakeService struct{ err error }

func (f fakeService) Delete(context.Context, int64) error { return f.err }

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"deleted", "3", nil, http.StatusNoContent},
		{"bad id", "three", nil, http.StatusBadRequest},
		{"missing", "3", yachts.ErrYachtNotFound, http.StatusNotFound},
		{"has bookings", "3", yachts.ErrHasBookings, http.StatusConflict},
		{"internal", "3", yachts.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodDelete, "/api/v1/admin/yachts/"+tt.id, nil), map[string]string{"yachtId": tt.id})
			rec := httptest.NewRecorder()

			NewHandler(fakeService{err: tt.err}, logger.NewNop()).Handle(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
