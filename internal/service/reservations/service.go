package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
	reservationRepo "github.com/elitecuts/booking-service/internal/infra/storage/reservation"
	"github.com/elitecuts/booking-service/internal/service/reservations/models"
	"github.com/elitecuts/booking-service/pkg/ptr"
)

// Service сервис для работы с бронированиями (админ-панель)
type Service struct {
	reservationRepo ReservationRepository
	publisher       EventPublisher
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		publisher:       publisher,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования в одном из представлений админ-панели:
// - upcoming: активные бронирования с сегодняшнего дня включительно
// - past: активные бронирования с датой строго раньше сегодняшнего дня
// - cancelled: отменённые бронирования
// - all: все бронирования без фильтрации
func (s *Service) List(ctx context.Context, view string) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, view=%s", view)

	filter, err := s.buildViewFilter(view)
	if err != nil {
		s.logger.Warn("List: unknown view=%s", view)
		return nil, err
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for view=%s: %v", view, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for view=%s", len(reservations), view)
	return models.FromDomainReservationList(reservations), nil
}

// ListByDate получает активные бронирования на конкретную дату
func (s *Service) ListByDate(ctx context.Context, date time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("ListByDate: fetching reservations for date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	filter := domain.ReservationsFilter{
		Date:   &date,
		Status: ptr.Ptr(domain.StatusActive),
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListByDate: repository error for date=%s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// Cancel выполняет мягкую отмену бронирования администратором.
// Прошедшие бронирования отменить нельзя: они уже часть истории.
// Запись остаётся в БД со статусом cancelled до срабатывания фоновой очистки.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if reservation.IsCancelled() {
		s.logger.Warn("Cancel: reservation id=%d is already cancelled", id)
		return nil, ErrAlreadyCancelled
	}

	if reservation.IsPast(s.timeProvider.Now()) {
		s.logger.Warn("Cancel: reservation id=%d is in the past (date=%s)",
			id, reservation.Date.Format(domain.DateFormat))
		return nil, ErrPastReservation
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		s.logger.Error("Cancel: failed to update status for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - failed to update status: %v", ErrInternal, err)
	}

	reservation.Status = domain.StatusCancelled

	// Уведомление об отмене вторично: сбой публикации не откатывает отмену
	if err := s.publisher.PublishReservationCancelled(ctx, reservation); err != nil {
		s.logger.Warn("Cancel: failed to publish cancellation for reservation id=%d: %v", id, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// buildViewFilter строит фильтр репозитория для представления админ-панели
func (s *Service) buildViewFilter(view string) (domain.ReservationsFilter, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch view {
	case models.ViewUpcoming:
		return domain.ReservationsFilter{DateFrom: &today, Status: ptr.Ptr(domain.StatusActive)}, nil
	case models.ViewPast:
		return domain.ReservationsFilter{DateBefore: &today, Status: ptr.Ptr(domain.StatusActive)}, nil
	case models.ViewCancelled:
		return domain.ReservationsFilter{Status: ptr.Ptr(domain.StatusCancelled)}, nil
	case models.ViewAll:
		return domain.ReservationsFilter{}, nil
	default:
		return domain.ReservationsFilter{}, fmt.Errorf("%w: %s", ErrInvalidView, view)
	}
}
