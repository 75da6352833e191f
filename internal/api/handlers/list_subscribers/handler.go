package list_subscribers

import (
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
)

type Handler struct {
	service SubscriberService
	logger  Logger
}

func NewHandler(service SubscriberService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/subscribers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/subscribers - Failed to list subscribers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
