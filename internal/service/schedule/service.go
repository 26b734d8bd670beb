package schedule

import (
	"context"
	"fmt"

	"github.com/elitecuts/booking-service/internal/service/schedule/models"
)

// Service сервис для просмотра расписания рабочих часов
type Service struct {
	workingHoursRepo WorkingHoursRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(workingHoursRepo WorkingHoursRepository, logger Logger) *Service {
	return &Service{
		workingHoursRepo: workingHoursRepo,
		logger:           logger,
	}
}

// ListAll получает все переопределения рабочих часов
func (s *Service) ListAll(ctx context.Context) (*models.WorkingHoursListResponse, error) {
	s.logger.Info("ListAll: fetching working hours overrides")

	overrides, err := s.workingHoursRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: fetched %d overrides", len(overrides))
	return models.FromDomainOverrideList(overrides), nil
}
