package submit_contact

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CharterService/internal/api/handlers"
	"github.com/m04kA/SMC-CharterService/internal/service/contacts"
	"github.com/m04kA/SMC-CharterService/internal/service/contacts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "проверьте имя, email и текст сообщения"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact-messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact-messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	msg, err := h.service.Submit(r.Context(), &req)
	if err != nil {
		if errors.Is(err, contacts.ErrInvalidInput) {
			h.logger.Warn("POST /contact-messages - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /contact-messages - Failed to save message: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /contact-messages - Message saved: message_id=%d", msg.ID)
	handlers.RespondJSON(w, http.StatusCreated, msg)
}
