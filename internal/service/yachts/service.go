package yachts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CharterService/internal/infra/dataset"
	yachtRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/yacht"
	"github.com/m04kA/SMC-CharterService/internal/service/yachts/models"
)

// Service сервис карточек яхт и локаций
type Service struct {
	source    YachtSource
	locations LocationSource
	yachtRepo YachtRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса яхт
// yachtRepo всегда Postgres, source и locations зависят от catalog.source
func NewService(source YachtSource, locations LocationSource, yachtRepo YachtRepository, logger Logger) *Service {
	return &Service{
		source:    source,
		locations: locations,
		yachtRepo: yachtRepo,
		logger:    logger,
	}
}

// Get возвращает опубликованную яхту
func (s *Service) Get(ctx context.Context, id int64) (*models.YachtResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: yachtId must be positive", ErrInvalidInput)
	}

	y, err := s.source.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("Get: yacht id=%d not found", id)
			return nil, ErrYachtNotFound
		}
		s.logger.Error("Get: failed to get yacht id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - source error: %v", ErrInternal, err)
	}

	if !y.IsPublished {
		s.logger.Warn("Get: yacht id=%d is not published", id)
		return nil, ErrYachtNotFound
	}

	return models.FromDomainYacht(y), nil
}

// ListLocations возвращает локации опубликованных яхт
func (s *Service) ListLocations(ctx context.Context) (*models.LocationListResponse, error) {
	locations, err := s.locations.ListLocations(ctx)
	if err != nil {
		s.logger.Error("ListLocations: source error: %v", err)
		return nil, fmt.Errorf("%w: ListLocations - source error: %v", ErrInternal, err)
	}

	return models.FromDomainLocations(locations), nil
}

// ListAll возвращает все яхты, включая черновики (для администратора)
func (s *Service) ListAll(ctx context.Context) (*models.YachtListResponse, error) {
	yachts, err := s.yachtRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return &models.YachtListResponse{Yachts: models.FromDomainYachtList(yachts)}, nil
}

// Create создает яхту (для администратора)
func (s *Service) Create(ctx context.Context, req *models.YachtRequest) (*models.YachtResponse, error) {
	if err := validateYachtRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.yachtRepo.Create(ctx, req.ToDomain(0))
	if err != nil {
		return nil, s.mapWriteError("Create", req.Slug, err)
	}

	s.logger.Info("Create: created yacht id=%d slug=%s", created.ID, created.Slug)
	return models.FromDomainYacht(created), nil
}

// Update перезаписывает яхту (для администратора)
func (s *Service) Update(ctx context.Context, id int64, req *models.YachtRequest) (*models.YachtResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: yachtId must be positive", ErrInvalidInput)
	}
	if err := validateYachtRequest(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.yachtRepo.Update(ctx, req.ToDomain(id))
	if err != nil {
		return nil, s.mapWriteError("Update", req.Slug, err)
	}

	s.logger.Info("Update: updated yacht id=%d", id)
	return models.FromDomainYacht(updated), nil
}

// Delete удаляет яхту без бронирований (для администратора)
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: yachtId must be positive", ErrInvalidInput)
	}

	err := s.yachtRepo.Delete(ctx, id)
	switch {
	case err == nil:
		s.logger.Info("Delete: deleted yacht id=%d", id)
		return nil
	case errors.Is(err, yachtRepo.ErrYachtNotFound):
		s.logger.Warn("Delete: yacht id=%d not found", id)
		return ErrYachtNotFound
	case errors.Is(err, yachtRepo.ErrYachtHasBookings):
		s.logger.Warn("Delete: yacht id=%d has bookings", id)
		return ErrHasBookings
	default:
		s.logger.Error("Delete: yacht id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
}

func (s *Service) mapWriteError(op, slug string, err error) error {
	switch {
	case errors.Is(err, yachtRepo.ErrSlugTaken):
		s.logger.Warn("%s: slug=%s already taken", op, slug)
		return ErrSlugTaken
	case errors.Is(err, yachtRepo.ErrYachtNotFound):
		s.logger.Warn("%s: yacht not found", op)
		return ErrYachtNotFound
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, yachtRepo.ErrYachtNotFound) || errors.Is(err, dataset.ErrYachtNotFound)
}
