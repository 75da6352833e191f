package subscribe

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	"github.com/m04kA/SMC-CharterService/internal/service/subscribers"
	"github.com/m04kA/SMC-CharterService/internal/service/subscribers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmail       = "некорректный email"
	msgAlreadySubscribed  = "email уже подписан на рассылку"
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

// Handle POST /api/v1/subscribers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /subscribers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	subscriber, err := h.service.Subscribe(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, subscribers.ErrInvalidInput):
			h.logger.Warn("POST /subscribers - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, subscribers.ErrAlreadySubscribed):
			h.logger.Warn("POST /subscribers - Already subscribed")
			handlers.RespondConflict(w, msgAlreadySubscribed)

		default:
			h.logger.Error("POST /subscribers - Failed to subscribe: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /subscribers - Subscribed: subscriber_id=%d", subscriber.ID)
	handlers.RespondJSON(w, http.StatusCreated, subscriber)
}
