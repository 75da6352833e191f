package models

import (
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// SubmitRequest сообщение из формы обратной связи
type SubmitRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// ContactMessageResponse сохраненное сообщение
type ContactMessageResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   *string   `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageListResponse ответ со списком сообщений
type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
}

// FromDomainContactMessage конвертирует domain модель в DTO
func FromDomainContactMessage(m *domain.ContactMessage) *ContactMessageResponse {
	if m == nil {
		return nil
	}
	return &ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainContactMessageList конвертирует список domain моделей в DTO
func FromDomainContactMessageList(messages []domain.ContactMessage) *ContactMessageListResponse {
	resp := &ContactMessageListResponse{
		Messages: make([]ContactMessageResponse, 0, len(messages)),
	}
	for i := range messages {
		resp.Messages = append(resp.Messages, *FromDomainContactMessage(&messages[i]))
	}
	return resp
}
