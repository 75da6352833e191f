package get_yacht_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/dataset"
	yachtRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/yacht"
)

// UseCase use case для получения свободных отправлений яхты на дату
type UseCase struct {
	bookingRepo  BookingRepository
	yachts       YachtSource
	limits       Limits
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	yachts YachtSource,
	limits Limits,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		yachts:       yachts,
		limits:       limits,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания яхты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetYachtAvailability: yacht=%d, date=%s, hours=%d",
		req.YachtID, req.Date.Format(domain.DateFormat), req.CharterHours)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetYachtAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now, uc.limits.AdvanceDays); err != nil {
		uc.logger.Warn("GetYachtAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем яхту
	yacht, err := uc.yachts.GetByID(ctx, req.YachtID)
	if err != nil {
		if errors.Is(err, yachtRepo.ErrYachtNotFound) || errors.Is(err, dataset.ErrYachtNotFound) {
			uc.logger.Warn("GetYachtAvailability: yacht id=%d not found", req.YachtID)
			return nil, ErrYachtNotFound
		}
		uc.logger.Error("GetYachtAvailability: failed to get yacht id=%d: %v", req.YachtID, err)
		return nil, fmt.Errorf("%w: failed to get yacht: %v", ErrInternal, err)
	}
	if !yacht.IsPublished {
		uc.logger.Warn("GetYachtAvailability: yacht id=%d is not published", req.YachtID)
		return nil, ErrYachtNotFound
	}

	// 5. Тариф на запрошенную длительность
	tier, ok := yacht.TierByHours(req.CharterHours)
	if !ok {
		uc.logger.Warn("GetYachtAvailability: yacht id=%d has no %dh tier", req.YachtID, req.CharterHours)
		return nil, ErrTierNotOffered
	}

	// 6. Генерируем отправления
	departures := generateDepartures(req.Date, req.CharterHours, now, uc.limits.MinNoticeHours)

	// 7. Получаем бронирования на весь день
	day := dayOf(req.Date)
	bookings, err := uc.bookingRepo.GetOverlapping(ctx, req.YachtID, day, day.Add(24*time.Hour))
	if err != nil {
		uc.logger.Error("GetYachtAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 8. Отмечаем занятые отправления
	slots := markAvailability(departures, req.CharterHours, tier.RetailCents, bookings)

	uc.logger.Info("GetYachtAvailability: generated %d departures for yacht=%d, date=%s",
		len(slots), req.YachtID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:         req.Date,
		YachtID:      req.YachtID,
		CharterHours: req.CharterHours,
		PriceCents:   tier.RetailCents,
		Slots:        slots,
	}, nil
}
