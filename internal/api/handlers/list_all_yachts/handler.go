package list_all_yachts

import (
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
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

// Handle GET /api/v1/admin/yachts
// Возвращает все яхты, включая неопубликованные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/yachts - Failed to list yachts: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/yachts - Listed %d yachts", len(result.Yachts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
