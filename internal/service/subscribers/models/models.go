package models

import (
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

// SubscribeRequest запрос на подписку
type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscriberResponse данные подписчика
type SubscriberResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// SubscriberListResponse ответ со списком подписчиков
type SubscriberListResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
}

// FromDomainSubscriber конвертирует domain модель в DTO
func FromDomainSubscriber(s *domain.Subscriber) *SubscriberResponse {
	if s == nil {
		return nil
	}
	return &SubscriberResponse{ID: s.ID, Email: s.Email, CreatedAt: s.CreatedAt}
}

// FromDomainSubscriberList конвертирует список domain моделей в DTO
func FromDomainSubscriberList(subscribers []domain.Subscriber) *SubscriberListResponse {
	resp := &SubscriberListResponse{
		Subscribers: make([]SubscriberResponse, 0, len(subscribers)),
	}
	for i := range subscribers {
		resp.Subscribers = append(resp.Subscribers, *FromDomainSubscriber(&subscribers[i]))
	}
	return resp
}
