package subscribers

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/notifier"
	subscriberRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/subscriber"
	"github.com/m04kA/SMC-CharterService/internal/service/subscribers/models"
)

// Service сервис подписки на рассылку
type Service struct {
	repo     SubscriberRepository
	notifier Notifier
	logger   Logger
}

// NewService создает новый экземпляр сервиса подписчиков
func NewService(repo SubscriberRepository, notifier Notifier, logger Logger) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Subscribe подписывает email на рассылку
// Email сравнивается без учета регистра
func (s *Service) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscriberResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		s.logger.Warn("Subscribe: invalid email %q: %v", req.Email, err)
		return nil, err
	}

	subscriber, err := s.repo.Create(ctx, email)
	if err != nil {
		if errors.Is(err, subscriberRepo.ErrAlreadyExists) {
			s.logger.Info("Subscribe: %s is already subscribed", email)
			return nil, ErrAlreadySubscribed
		}
		s.logger.Error("Subscribe: repository error: %v", err)
		return nil, fmt.Errorf("%w: Subscribe - repository error: %v", ErrInternal, err)
	}

	if err := s.notifier.Publish(ctx, notifier.RoutingSubscriberCreated, notifier.SubscriberEvent{Email: email}); err != nil {
		s.logger.Warn("Subscribe: failed to publish event: %v", err)
	}

	s.logger.Info("Subscribe: subscriber id=%d created", subscriber.ID)
	return models.FromDomainSubscriber(subscriber), nil
}

// Unsubscribe удаляет подписку
func (s *Service) Unsubscribe(ctx context.Context, rawEmail string) error {
	email, err := normalizeEmail(rawEmail)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		if errors.Is(err, subscriberRepo.ErrSubscriberNotFound) {
			s.logger.Warn("Unsubscribe: %s not found", email)
			return ErrSubscriberNotFound
		}
		s.logger.Error("Unsubscribe: repository error: %v", err)
		return fmt.Errorf("%w: Unsubscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unsubscribe: %s removed", email)
	return nil
}

// List возвращает всех подписчиков (для администратора)
func (s *Service) List(ctx context.Context) (*models.SubscriberListResponse, error) {
	subscribers, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSubscriberList(subscribers), nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || len(email) > domain.MaxEmailLength {
		return "", fmt.Errorf("%w: email must be 1..%d characters", ErrInvalidInput, domain.MaxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	return email, nil
}
