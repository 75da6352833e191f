package delete_yacht

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
	msgHasBookings    = "у яхты есть бронирования, снимите ее с публикации"
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

// Handle DELETE /api/v1/admin/yachts/{yachtId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	yachtID, err := handlers.ParseID(mux.Vars(r)["yachtId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/yachts/{id} - Invalid yacht ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYachtID)
		return
	}

	if err := h.service.Delete(r.Context(), yachtID); err != nil {
		switch {
		case errors.Is(err, yachts.ErrYachtNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, yachts.ErrHasBookings):
			h.logger.Warn("DELETE /admin/yachts/{id} - Yacht has bookings: yacht_id=%d", yachtID)
			handlers.RespondConflict(w, msgHasBookings)

		default:
			h.logger.Error("DELETE /admin/yachts/{id} - Failed to delete yacht: yacht_id=%d, error=%v", yachtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/yachts/{id} - Yacht deleted: yacht_id=%d", yachtID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
