package get_yacht

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	"github.com/m04kA/SMC-CharterService/internal/service/yachts"
)

const (
	msgInvalidYachtID = "некорректный ID яхты"
	msgNotFound       = "яхта не найдена"
)

type Handler struct {
	service YachtService
	logger  Logger
}

func NewHandler(service YachtService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/yachts/{yachtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yachtID, err := handlers.ParseID(mux.Vars(r)["yachtId"])
	if err != nil {
		h.logger.Warn("GET /yachts/{id} - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	yacht, err := h.service.Get(r.Context(), yachtID)
	if err != nil {
		switch {
		case errors.Is(err, yachts.ErrYachtNotFound):
			h.logger.Warn("GET /yachts/{id} - Yacht not found: yacht_id=%d", yachtID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /yachts/{id} - Failed to get yacht: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, yacht)
}
