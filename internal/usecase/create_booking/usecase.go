package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/notifier"
	yachtRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/yacht"
)

// UseCase use case для создания бронирования яхты
type UseCase struct {
	bookingRepo  BookingRepository
	yachtRepo    YachtRepository
	txManager    TransactionManager
	notifier     Notifier
	limits       Limits
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	yachtRepo YachtRepository,
	txManager TransactionManager,
	notifier Notifier,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		yachtRepo:    yachtRepo,
		txManager:    txManager,
		notifier:     notifier,
		limits:       limits,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения двойного бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: yacht=%d, start=%s, hours=%d, guests=%d",
		req.YachtID, req.StartAt.Format(domain.DateFormat+" "+domain.TimeFormat), req.CharterHours, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты и времени отправления
	if err := validateDate(req.StartAt, now, uc.limits.AdvanceDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateDeparture(req.StartAt, req.CharterHours); err != nil {
		uc.logger.Warn("CreateBooking: departure validation failed: %v", err)
		return nil, err
	}
	if err := validateNotice(req.StartAt, now, uc.limits.MinNoticeHours); err != nil {
		uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
		return nil, err
	}

	end := req.StartAt.Add(time.Duration(req.CharterHours) * time.Hour)

	var result *domain.Booking

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем яхту
		yacht, err := uc.yachtRepo.GetByID(txCtx, req.YachtID)
		if err != nil {
			if errors.Is(err, yachtRepo.ErrYachtNotFound) {
				uc.logger.Warn("CreateBooking: yacht id=%d not found", req.YachtID)
				return ErrYachtNotFound
			}
			return fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
		}
		if !yacht.IsPublished {
			uc.logger.Warn("CreateBooking: yacht id=%d is not published", req.YachtID)
			return ErrYachtNotFound
		}

		// 4.2. Тариф на запрошенную длительность
		tier, ok := yacht.TierByHours(req.CharterHours)
		if !ok {
			uc.logger.Warn("CreateBooking: yacht id=%d has no %dh tier", req.YachtID, req.CharterHours)
			return ErrTierNotOffered
		}

		// 4.3. Вместимость, 0 означает что не указана
		if yacht.GuestCapacity > 0 && req.Guests > yacht.GuestCapacity {
			uc.logger.Warn("CreateBooking: %d guests exceed capacity %d of yacht id=%d",
				req.Guests, yacht.GuestCapacity, req.YachtID)
			return fmt.Errorf("%w: capacity is %d", ErrTooManyGuests, yacht.GuestCapacity)
		}

		// 4.4. Проверяем пересечения с активными бронированиями (FOR UPDATE)
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.YachtID, req.StartAt, end)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}
		if countOverlapping(overlapping, req.StartAt, end) > 0 {
			uc.logger.Warn("CreateBooking: yacht id=%d is busy at %s", req.YachtID, req.StartAt.Format(domain.TimeFormat))
			return ErrSlotNotAvailable
		}

		// 4.5. Создаем бронирование с денормализацией данных яхты
		booking := &domain.Booking{
			Reference:     uuid.NewString(),
			YachtID:       yacht.ID,
			StartAt:       req.StartAt,
			CharterHours:  req.CharterHours,
			Guests:        req.Guests,
			Status:        domain.StatusPending,
			YachtName:     yacht.Name,
			PriceCents:    tier.RetailCents,
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: strings.TrimSpace(req.CustomerEmail),
			CustomerPhone: req.CustomerPhone,
			Notes:         req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d ref=%s", result.ID, result.Reference)

	event := notifier.BookingEvent{
		Reference:     result.Reference,
		YachtID:       result.YachtID,
		YachtName:     result.YachtName,
		StartAt:       result.StartAt,
		CharterHours:  result.CharterHours,
		Guests:        result.Guests,
		PriceCents:    result.PriceCents,
		Status:        string(result.Status),
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
	}
	if err := uc.notifier.Publish(ctx, notifier.RoutingBookingCreated, event); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for ref=%s: %v", result.Reference, err)
	}

	return &Response{
		ID:            result.ID,
		Reference:     result.Reference,
		YachtID:       result.YachtID,
		StartAt:       result.StartAt,
		EndAt:         result.EndAt(),
		CharterHours:  result.CharterHours,
		Guests:        result.Guests,
		Status:        string(result.Status),
		YachtName:     result.YachtName,
		PriceCents:    result.PriceCents,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// countOverlapping подсчитывает активные бронирования, пересекающиеся с [start, end)
// Граничащие интервалы не считаются пересечением
func countOverlapping(bookings []*domain.Booking, start, end time.Time) int {
	count := 0
	for _, booking := range bookings {
		if booking.IsActive() && booking.Overlaps(start, end) {
			count++
		}
	}
	return count
}
