package unsubscribe

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	"github.com/m04kA/SMC-CharterService/internal/service/subscribers"
)

const (
	msgInvalidEmail = "некорректный email"
	msgNotFound     = "подписка не найдена"
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

// Handle DELETE /api/v1/subscribers/{email}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	if err := h.service.Unsubscribe(r.Context(), email); err != nil {
		switch {
		case errors.Is(err, subscribers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, subscribers.ErrSubscriberNotFound):
			h.logger.Warn("DELETE /subscribers/{email} - Subscriber not found")
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /subscribers/{email} - Failed to unsubscribe: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /subscribers/{email} - Unsubscribed")
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
