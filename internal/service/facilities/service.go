package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	facilityRepo "github.com/m04kA/campus-facility-booking/internal/infra/storage/facility"
	"github.com/m04kA/campus-facility-booking/internal/service/facilities/models"
)

// Service сервис чтения каталога помещений
type Service struct {
	facilityRepo FacilityRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(facilityRepo FacilityRepository, logger Logger) *Service {
	return &Service{
		facilityRepo: facilityRepo,
		logger:       logger,
	}
}

// List возвращает помещения каталога
// activeOnly = true скрывает помещения, недоступные для бронирования
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.FacilityListResponse, error) {
	s.logger.Info("ListFacilities: activeOnly=%t", activeOnly)

	facilities, err := s.facilityRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListFacilities: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListFacilities: successfully fetched %d facilities", len(facilities))
	return models.FromDomainFacilityList(facilities), nil
}

// GetByID возвращает помещение по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.FacilityResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: facility id is required", ErrInvalidInput)
	}

	facility, err := s.facilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, facilityRepo.ErrFacilityNotFound) {
			s.logger.Warn("GetFacility: facility id=%s not found", id)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacility: repository error for facility id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainFacility(facility), nil
}
