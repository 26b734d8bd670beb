package set_working_hours

import (
	"context"
	"fmt"

	"github.com/elitecuts/booking-service/internal/domain"
)

// UseCase use case для установки рабочих часов с каскадной отменой бронирований
type UseCase struct {
	reservationRepo  ReservationRepository
	workingHoursRepo WorkingHoursRepository
	txManager        TransactionManager
	publisher        EventPublisher
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	workingHoursRepo WorkingHoursRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		workingHoursRepo: workingHoursRepo,
		txManager:        txManager,
		publisher:        publisher,
		logger:           logger,
	}
}

// Execute выполняет use case установки рабочих часов.
// При закрытии окна все активные бронирования, попадающие в [start, end),
// отменяются в той же сериализуемой транзакции: переопределение и каскад
// либо фиксируются вместе, либо не фиксируются вовсе.
//
// Каскад намеренно не проверяет, что дата в прошлом: закрытие окна задним
// числом всё равно отменяет попавшие в него бронирования. Защита от отмены
// прошедших бронирований действует только при прямой отмене администратором.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetWorkingHours: date=%s, window=%s-%s, available=%t",
		req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.IsAvailable)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SetWorkingHours: validation failed: %v", err)
		return nil, err
	}

	var savedOverride *domain.WorkingHoursOverride
	cancelled := make([]*domain.Reservation, 0)

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Сохраняем переопределение (идемпотентный upsert)
		override := &domain.WorkingHoursOverride{
			Date:        req.Date,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			IsAvailable: req.IsAvailable,
		}

		saved, err := uc.workingHoursRepo.Upsert(txCtx, override)
		if err != nil {
			uc.logger.Error("SetWorkingHours: failed to upsert override: %v", err)
			return fmt.Errorf("%w: failed to upsert override: %v", ErrInternal, err)
		}
		savedOverride = saved

		// 2.2. Открытие окна не трогает бронирования: ранее отменённые
		// каскадом не восстанавливаются
		if saved.IsAvailable {
			return nil
		}

		// 2.3. Получаем активные бронирования на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.ListActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("SetWorkingHours: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 2.4. Отменяем бронирования, попавшие в закрытое окно
		for _, reservation := range reservations {
			canonical, err := reservation.Time.To24h()
			if err != nil {
				uc.logger.Error("SetWorkingHours: reservation id=%d has malformed time %q: %v",
					reservation.ID, reservation.Time, err)
				return fmt.Errorf("%w: malformed reservation time: %v", ErrInternal, err)
			}

			if !saved.Covers(canonical) {
				continue
			}

			if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, domain.StatusCancelled); err != nil {
				uc.logger.Error("SetWorkingHours: failed to cancel reservation id=%d: %v",
					reservation.ID, err)
				return fmt.Errorf("%w: failed to cancel reservation: %v", ErrInternal, err)
			}

			reservation.Status = domain.StatusCancelled
			cancelled = append(cancelled, reservation)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetWorkingHours: saved override id=%d, cancelled %d reservations",
		savedOverride.ID, len(cancelled))

	// 3. Публикуем события отмены после коммита.
	// Сбой публикации не влияет на результат: отмена уже зафиксирована.
	for _, reservation := range cancelled {
		if err := uc.publisher.PublishReservationCancelled(ctx, reservation); err != nil {
			uc.logger.Warn("SetWorkingHours: failed to publish cancellation for reservation id=%d: %v",
				reservation.ID, err)
		}
	}

	return &Response{
		Override:              savedOverride,
		CancelledReservations: cancelled,
	}, nil
}
