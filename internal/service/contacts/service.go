package contacts

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/notifier"
	"github.com/m04kA/SMC-CharterService/internal/service/contacts/models"
)

// Service сервис формы обратной связи
type Service struct {
	repo     ContactRepository
	notifier Notifier
	logger   Logger
}

// NewService создает новый экземпляр сервиса обратной связи
func NewService(repo ContactRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Submit сохраняет сообщение и публикует событие для брокера
func (s *Service) Submit(ctx context.Context, req *models.SubmitRequest) (*models.ContactMessageResponse, error) {
	msg, err := validateSubmit(req)
	if err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, msg)
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	event := notifier.ContactEvent{
		ID:      created.ID,
		Name:    created.Name,
		Email:   created.Email,
		Phone:   created.Phone,
		Subject: created.Subject,
		Message: created.Message,
	}
	if err := s.notifier.Publish(ctx, notifier.RoutingContactCreated, event); err != nil {
		s.logger.Warn("Submit: failed to publish event for message id=%d: %v", created.ID, err)
	}

	s.logger.Info("Submit: contact message id=%d saved", created.ID)
	return models.FromDomainContactMessage(created), nil
}

// List возвращает все сообщения (для администратора)
func (s *Service) List(ctx context.Context) (*models.ContactMessageListResponse, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainContactMessageList(messages), nil
}

func validateSubmit(req *models.SubmitRequest) (*domain.ContactMessage, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if len(email) > domain.MaxEmailLength {
		return nil, fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}

	message := strings.TrimSpace(req.Message)
	if message == "" || len(message) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message must be 1..%d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	if req.Phone != nil && len(*req.Phone) > domain.MaxPhoneLength {
		return nil, fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}
	if req.Subject != nil && len(*req.Subject) > domain.MaxSubjectLength {
		return nil, fmt.Errorf("%w: subject is too long", ErrInvalidInput)
	}

	return &domain.ContactMessage{
		Name:    name,
		Email:   email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: message,
	}, nil
}
