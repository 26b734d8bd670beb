package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/elitecuts/booking-service/internal/domain"
	reservationRepo "github.com/elitecuts/booking-service/internal/infra/storage/reservation"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// два конкурирующих запроса на один слот не могут оба пройти проверку занятости.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s, service=%s",
		req.Date.Format(domain.DateFormat), req.Time, req.Service)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// Каноническая форма слота для сравнения с рабочими часами
	canonical, err := req.Time.To24h()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем активные бронирования на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.ListActiveByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 2.2. Проверяем занятость слота
		for _, r := range reservations {
			if r.Time == req.Time {
				uc.logger.Warn("CreateReservation: slot %s on %s already taken by reservation id=%d",
					req.Time, req.Date.Format(domain.DateFormat), r.ID)
				return ErrSlotTaken
			}
		}

		// 2.3. Проверяем, что слот не попадает в закрытое окно [start, end)
		// Дата без закрытых окон открыта целиком - политика по умолчанию
		closed, err := uc.workingHoursRepo.ListClosedByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get closed windows: %v", err)
			return fmt.Errorf("%w: failed to get closed windows: %v", ErrInternal, err)
		}

		for _, override := range closed {
			if override.Covers(canonical) {
				uc.logger.Warn("CreateReservation: slot %s on %s falls into closed window %s-%s",
					req.Time, req.Date.Format(domain.DateFormat), override.StartTime, override.EndTime)
				return ErrOutsideWorkingHours
			}
		}

		// 2.4. Создаем бронирование
		reservation := &domain.Reservation{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Service: req.Service,
			Date:    req.Date,
			Time:    req.Time,
			Status:  domain.StatusActive,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Уникальный индекс в БД - последняя линия защиты от двойного бронирования
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: unique index rejected slot %s on %s",
					req.Time, req.Date.Format(domain.DateFormat))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

	// 3. Публикуем событие подтверждения после коммита.
	// Ошибка публикации не откатывает бронирование: уведомление вторично.
	if err := uc.publisher.PublishReservationConfirmed(ctx, result); err != nil {
		uc.logger.Warn("CreateReservation: failed to publish confirmation for reservation id=%d: %v",
			result.ID, err)
	}

	// Конвертируем в response
	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		Email:     result.Email,
		Phone:     result.Phone,
		Service:   result.Service,
		Date:      result.Date,
		Time:      result.Time,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
		UpdatedAt: result.UpdatedAt,
	}, nil
}
