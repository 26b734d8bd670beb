package retention

import (
	"context"
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// WorkingHoursRepository интерфейс репозитория переопределений рабочих часов
type WorkingHoursRepository interface {
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Scheduler раз в сутки удаляет устаревшие записи:
// бронирования старше двух недель и переопределения рабочих часов
// на прошедшие даты. Очистка идёт вне пути бронирования - обычный
// тикер с защитой от повторного запуска в тот же день.
type Scheduler struct {
	reservationRepo  ReservationRepository
	workingHoursRepo WorkingHoursRepository
	timeProvider     TimeProvider
	logger           Logger

	runHour     int // час локального времени, когда запускается очистка
	lastRunDate string

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewScheduler создает новый экземпляр планировщика очистки
func NewScheduler(
	reservationRepo ReservationRepository,
	workingHoursRepo WorkingHoursRepository,
	runHour int,
	logger Logger,
) *Scheduler {
	return &Scheduler{
		reservationRepo:  reservationRepo,
		workingHoursRepo: workingHoursRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
		runHour:          runHour,
		stopCh:           make(chan struct{}),
		doneCh:           make(chan struct{}),
	}
}

// Start запускает фоновый цикл планировщика
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx)
	s.logger.Info("retention: scheduler started, daily run at %02d:00", s.runHour)
}

// Stop останавливает планировщик и дожидается завершения цикла
func (s *Scheduler) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.logger.Info("retention: scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := s.timeProvider.Now()
			today := now.Format(domain.DateFormat)

			if now.Hour() != s.runHour || s.lastRunDate == today {
				continue
			}

			s.RunOnce(ctx)
			s.lastRunDate = today
		}
	}
}

// RunOnce выполняет одну очистку. Вынесено отдельно, чтобы очистку
// можно было запустить вручную и покрыть тестами.
func (s *Scheduler) RunOnce(ctx context.Context) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	reservationCutoff := today.AddDate(0, 0, -domain.ReservationRetentionDays)
	deleted, err := s.reservationRepo.DeleteOlderThan(ctx, reservationCutoff)
	if err != nil {
		s.logger.Error("retention: failed to delete old reservations: %v", err)
	} else if deleted > 0 {
		s.logger.Info("retention: deleted %d reservations older than %s",
			deleted, reservationCutoff.Format(domain.DateFormat))
	}

	deleted, err = s.workingHoursRepo.DeleteBefore(ctx, today)
	if err != nil {
		s.logger.Error("retention: failed to delete old working hours: %v", err)
	} else if deleted > 0 {
		s.logger.Info("retention: deleted %d working hours overrides before %s",
			deleted, today.Format(domain.DateFormat))
	}
}
