package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CharterService/internal/infra/notifier"
	"github.com/m04kA/SMC-CharterService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	notifier    Notifier
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		notifier:    notifier,
		logger:      logger,
	}
}

// GetByReference получает бронирование по публичному номеру
func (s *Service) GetByReference(ctx context.Context, reference string) (*models.BookingResponse, error) {
	s.logger.Info("GetByReference: fetching booking ref=%s", reference)

	if _, err := uuid.Parse(reference); err != nil {
		s.logger.Warn("GetByReference: malformed reference=%q", reference)
		return nil, fmt.Errorf("%w: malformed reference", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByReference: booking ref=%s not found", reference)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByReference: repository error for ref=%s: %v", reference, err)
		return nil, fmt.Errorf("%w: GetByReference - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией (для администратора)
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		s.logger.Warn("List: endDate before startDate")
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование по запросу клиента
// Клиент подтверждает владение бронированием email адресом
func (s *Service) Cancel(ctx context.Context, reference string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking ref=%s", reference)

	if _, err := uuid.Parse(reference); err != nil {
		return nil, fmt.Errorf("%w: malformed reference", ErrInvalidInput)
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByReference(txCtx, reference)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking ref=%s not found", reference)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !strings.EqualFold(strings.TrimSpace(req.Email), booking.CustomerEmail) {
			s.logger.Warn("Cancel: email mismatch for booking ref=%s", reference)
			return ErrAccessDenied
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking ref=%s cannot be cancelled, status=%s", reference, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, booking.ID, domain.StatusCancelledByCustomer, req.CancellationReason); err != nil {
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCancelledByCustomer
		booking.CancellationReason = req.CancellationReason
		result = booking
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Cancel: booking ref=%s: %v", reference, err)
		}
		return nil, err
	}

	s.publish(ctx, notifier.RoutingBookingCancelled, result, req.CancellationReason)

	s.logger.Info("Cancel: successfully cancelled booking ref=%s", reference)
	return models.FromDomainBooking(result), nil
}

// UpdateStatus меняет статус бронирования (для администратора)
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var result *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !booking.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: booking id=%d cannot move from %s to %s", bookingID, booking.Status, newStatus)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		if newStatus == domain.StatusCancelledByBroker {
			err = s.bookingRepo.Cancel(txCtx, bookingID, newStatus, req.Reason)
			booking.CancellationReason = req.Reason
		} else {
			err = s.bookingRepo.UpdateStatus(txCtx, bookingID, newStatus)
		}
		if err != nil {
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		booking.Status = newStatus
		result = booking
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("UpdateStatus: booking id=%d: %v", bookingID, err)
		}
		return nil, err
	}

	s.publish(ctx, notifier.RoutingBookingStatusChanged, result, req.Reason)

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return models.FromDomainBooking(result), nil
}

// publish отправляет событие; ошибка доставки не отменяет операцию
func (s *Service) publish(ctx context.Context, routingKey string, b *domain.Booking, reason *string) {
	event := notifier.BookingEvent{
		Reference:     b.Reference,
		YachtID:       b.YachtID,
		YachtName:     b.YachtName,
		StartAt:       b.StartAt,
		CharterHours:  b.CharterHours,
		Guests:        b.Guests,
		PriceCents:    b.PriceCents,
		Status:        string(b.Status),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Reason:        reason,
	}

	if err := s.notifier.Publish(ctx, routingKey, event); err != nil {
		s.logger.Warn("publish: %s for booking ref=%s failed: %v", routingKey, b.Reference, err)
	}
}
