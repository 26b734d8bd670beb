package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitecuts/booking-service/internal/domain"
	reservationRepo "github.com/elitecuts/booking-service/internal/infra/storage/reservation"
	"github.com/elitecuts/booking-service/pkg/types"
)

type stubReservationRepo struct {
	existing  []*domain.Reservation
	listErr   error
	createErr error

	created *domain.Reservation
}

func (s *stubReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *reservation
	out.ID = 42
	out.CreatedAt = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	out.UpdatedAt = out.CreatedAt
	s.created = &out
	return &out, nil
}

func (s *stubReservationRepo) ListActiveByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return s.existing, s.listErr
}

type stubWorkingHoursRepo struct {
	closed []*domain.WorkingHoursOverride
	err    error
}

func (s *stubWorkingHoursRepo) ListClosedByDate(_ context.Context, _ time.Time) ([]*domain.WorkingHoursOverride, error) {
	return s.closed, s.err
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubPublisher struct {
	err       error
	confirmed []*domain.Reservation
}

func (s *stubPublisher) PublishReservationConfirmed(_ context.Context, reservation *domain.Reservation) error {
	if s.err != nil {
		return s.err
	}
	s.confirmed = append(s.confirmed, reservation)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Name:    "John Smith",
		Email:   "john@example.com",
		Phone:   "+1 555 0100",
		Service: "Classic Haircut",
		Date:    time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Time:    "2:00 PM",
	}
}

func newUseCase(repo *stubReservationRepo, hours *stubWorkingHoursRepo, pub *stubPublisher) *UseCase {
	return NewUseCase(repo, hours, passthroughTxManager{}, pub, nopLogger{})
}

func TestUseCase_Execute_Success(t *testing.T) {
	repo := &stubReservationRepo{}
	pub := &stubPublisher{}
	uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "John Smith", resp.Name)
	assert.Equal(t, types.DisplayTime("2:00 PM"), resp.Time)
	assert.Equal(t, string(domain.StatusActive), resp.Status)

	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusActive, repo.created.Status)

	// confirmation event is published after the transaction commits
	require.Len(t, pub.confirmed, 1)
	assert.Equal(t, int64(42), pub.confirmed[0].ID)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "empty name", mutate: func(r *Request) { r.Name = "  " }, wantErr: ErrInvalidInput},
		{name: "empty email", mutate: func(r *Request) { r.Email = "" }, wantErr: ErrInvalidInput},
		{name: "empty phone", mutate: func(r *Request) { r.Phone = "" }, wantErr: ErrInvalidInput},
		{name: "empty service", mutate: func(r *Request) { r.Service = "" }, wantErr: ErrInvalidInput},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "malformed time", mutate: func(r *Request) { r.Time = "14:00" }, wantErr: ErrInvalidInput},
		{name: "off-grid time", mutate: func(r *Request) { r.Time = "2:15 PM" }, wantErr: ErrInvalidTimeSlot},
		{name: "before opening", mutate: func(r *Request) { r.Time = "8:00 AM" }, wantErr: ErrInvalidTimeSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubReservationRepo{}
			pub := &stubPublisher{}
			uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, repo.created)
			assert.Empty(t, pub.confirmed)
		})
	}
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	repo := &stubReservationRepo{
		existing: []*domain.Reservation{
			{ID: 7, Time: "2:00 PM", Status: domain.StatusActive},
		},
	}
	pub := &stubPublisher{}
	uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Nil(t, repo.created)
	assert.Empty(t, pub.confirmed)
}

func TestUseCase_Execute_SlotTakenByUniqueIndex(t *testing.T) {
	// concurrent insert slipped past the in-transaction check; the partial
	// unique index rejects it and the caller still sees a slot conflict
	repo := &stubReservationRepo{createErr: reservationRepo.ErrSlotTaken}
	pub := &stubPublisher{}
	uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, pub.confirmed)
}

func TestUseCase_Execute_ClosedWindow(t *testing.T) {
	hours := &stubWorkingHoursRepo{
		closed: []*domain.WorkingHoursOverride{
			{StartTime: "13:00", EndTime: "15:00", IsAvailable: false},
		},
	}

	t.Run("slot inside closed window is rejected", func(t *testing.T) {
		repo := &stubReservationRepo{}
		uc := newUseCase(repo, hours, &stubPublisher{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrOutsideWorkingHours)
		assert.Nil(t, repo.created)
	})

	t.Run("slot at window end is allowed", func(t *testing.T) {
		repo := &stubReservationRepo{}
		uc := newUseCase(repo, hours, &stubPublisher{})

		req := validRequest()
		req.Time = "3:00 PM"

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, repo.created)
	})
}

func TestUseCase_Execute_PublishFailureIsNotFatal(t *testing.T) {
	repo := &stubReservationRepo{}
	pub := &stubPublisher{err: errors.New("broker unavailable")}
	uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
}

func TestUseCase_Execute_RepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("list failure", func(t *testing.T) {
		uc := newUseCase(&stubReservationRepo{listErr: boom}, &stubWorkingHoursRepo{}, &stubPublisher{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("create failure", func(t *testing.T) {
		uc := newUseCase(&stubReservationRepo{createErr: boom}, &stubWorkingHoursRepo{}, &stubPublisher{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("closed windows failure", func(t *testing.T) {
		uc := newUseCase(&stubReservationRepo{}, &stubWorkingHoursRepo{err: boom}, &stubPublisher{})

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}
