package update_yacht

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	"github.com/m04kA/SMC-CharterService/internal/service/yachts"
	"github.com/m04kA/SMC-CharterService/internal/service/yachts/models"
)

const (
	msgInvalidYachtID     = "некорректный ID яхты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные яхты"
	msgNotFound           = "яхта не найдена"
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

// Handle PUT /api/v1/admin/yachts/{yachtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yachtID, err := handlers.ParseID(mux.Vars(r)["yachtId"])
	if err != nil {
		h.logger.Warn("PUT /admin/yachts/{id} - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	var req models.YachtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/yachts/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	yacht, err := h.service.Update(r.Context(), yachtID, &req)
	if err != nil {
		switch {
		case errors.Is(err, yachts.ErrInvalidInput):
			h.logger.Warn("PUT /admin/yachts/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, yachts.ErrYachtNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, yachts.ErrSlugTaken):
			h.logger.Warn("PUT /admin/yachts/{id} - Slug taken: slug=%s", req.Slug)
			handlers.RespondConflict(w, msgSlugTaken)

		default:
			h.logger.Error("PUT /admin/yachts/{id} - Failed to update yacht: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/yachts/{id} - Yacht updated: yacht_id=%d", yachtID)
	handlers.RespondJSON(w, http.StatusOK, yacht)
}
