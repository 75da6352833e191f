package list_locations

import (
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
)

type Handler struct {
	service LocationService
	logger  Logger
}

func NewHandler(service LocationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListLocations(r.Context())
	if err != nil {
		h.logger.Error("GET /locations - Failed to list locations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
