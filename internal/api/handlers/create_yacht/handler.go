package create_yacht

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	"github.com/m04kA/SMC-CharterService/internal/service/yachts"
	"github.com/m04kA/SMC-CharterService/internal/service/yachts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные яхты"
	msgSlugTaken          = "slug уже занят другой яхтой"
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

// Handle POST /api/v1/admin/yachts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.YachtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/yachts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	yacht, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, yachts.ErrInvalidInput):
			h.logger.Warn("POST /admin/yachts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, yachts.ErrSlugTaken):
			h.logger.Warn("POST /admin/yachts - Slug taken: slug=%s", req.Slug)
			handlers.RespondConflict(w, msgSlugTaken)

		default:
			h.logger.Error("POST /admin/yachts - Failed to create yacht: slug=%s, error=%v", req.Slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/yachts - Yacht created: yacht_id=%d, slug=%s", yacht.ID, yacht.Slug)
	handlers.RespondJSON(w, http.StatusCreated, yacht)
}
