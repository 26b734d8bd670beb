package get_availability

import (
	"context"
	"fmt"

	"github.com/elitecuts/booking-service/internal/domain"
	"github.com/elitecuts/booking-service/pkg/types"
)

// UseCase use case для расчёта доступности слотов на дату
type UseCase struct {
	reservationRepo  ReservationRepository
	workingHoursRepo WorkingHoursRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	workingHoursRepo WorkingHoursRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		workingHoursRepo: workingHoursRepo,
		logger:           logger,
	}
}

// Execute выполняет use case расчёта доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем активные бронирования на дату
	reservations, err := uc.reservationRepo.ListActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 3. Получаем закрытые окна на дату
	closed, err := uc.workingHoursRepo.ListClosedByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get closed windows: %v", err)
		return nil, fmt.Errorf("%w: failed to get closed windows: %v", ErrInternal, err)
	}

	// Дата без закрытых окон полностью открыта - это политика по умолчанию,
	// а не ошибка конфигурации
	if len(closed) == 0 {
		uc.logger.Info("GetAvailability: no closed windows for %s, date is fully open",
			req.Date.Format(domain.DateFormat))
	}

	// 4. Раскладываем сетку на доступные и занятые слоты
	available, reserved, err := computeAvailability(reservedTimes(reservations), closed)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to compute availability: %v", err)
		return nil, fmt.Errorf("%w: failed to compute availability: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: date=%s, available=%d, reserved=%d",
		req.Date.Format(domain.DateFormat), len(available), len(reserved))

	return &Response{
		Date:           req.Date,
		AllSlots:       domain.AllSlots(),
		AvailableSlots: available,
		ReservedSlots:  reserved,
	}, nil
}

// IsSlotAvailable проверяет доступность одного слота на дату: слот доступен,
// если он входит в сетку и не попал в множество занятых (бронирование или
// закрытое окно). Используется ассистентом для ответа на вопросы о свободном
// времени.
func (uc *UseCase) IsSlotAvailable(ctx context.Context, req *Request, slot types.DisplayTime) (bool, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("IsSlotAvailable: validation failed: %v", err)
		return false, err
	}

	if !domain.IsGridSlot(slot) {
		return false, nil
	}

	reservations, err := uc.reservationRepo.ListActiveByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("IsSlotAvailable: failed to get reservations: %v", err)
		return false, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	if _, taken := reservedTimes(reservations)[slot]; taken {
		return false, nil
	}

	closed, err := uc.workingHoursRepo.ListClosedByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("IsSlotAvailable: failed to get closed windows: %v", err)
		return false, fmt.Errorf("%w: failed to get closed windows: %v", ErrInternal, err)
	}

	canonical, err := slot.To24h()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return !isWithinClosedWindow(canonical, closed), nil
}
