package set_working_hours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitecuts/booking-service/internal/domain"
	"github.com/elitecuts/booking-service/pkg/types"
)

type stubReservationRepo struct {
	active    []*domain.Reservation
	listErr   error
	updateErr error

	cancelledIDs []int64
}

func (s *stubReservationRepo) ListActiveByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return s.active, s.listErr
}

func (s *stubReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	if status == domain.StatusCancelled {
		s.cancelledIDs = append(s.cancelledIDs, id)
	}
	return nil
}

type stubWorkingHoursRepo struct {
	err error
}

func (s *stubWorkingHoursRepo) Upsert(_ context.Context, override *domain.WorkingHoursOverride) (*domain.WorkingHoursOverride, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := *override
	out.ID = 11
	return &out, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubPublisher struct {
	err       error
	cancelled []*domain.Reservation
}

func (s *stubPublisher) PublishReservationCancelled(_ context.Context, reservation *domain.Reservation) error {
	if s.err != nil {
		return s.err
	}
	s.cancelled = append(s.cancelled, reservation)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeReservation(id int64, slot types.DisplayTime) *domain.Reservation {
	return &domain.Reservation{ID: id, Time: slot, Status: domain.StatusActive}
}

func closeRequest(start, end types.TimeString) *Request {
	return &Request{
		Date:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   start,
		EndTime:     end,
		IsAvailable: false,
	}
}

func newUseCase(repo *stubReservationRepo, hours *stubWorkingHoursRepo, pub *stubPublisher) *UseCase {
	return NewUseCase(repo, hours, passthroughTxManager{}, pub, nopLogger{})
}

func TestUseCase_Execute_ClosureCancelsCoveredReservations(t *testing.T) {
	repo := &stubReservationRepo{
		active: []*domain.Reservation{
			activeReservation(1, "12:30 PM"), // before the window
			activeReservation(2, "1:00 PM"),  // at window start, cancelled
			activeReservation(3, "2:30 PM"),  // inside, cancelled
			activeReservation(4, "3:00 PM"),  // at window end, kept
			activeReservation(5, "4:00 PM"),  // after the window
		},
	}
	pub := &stubPublisher{}
	uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

	resp, err := uc.Execute(context.Background(), closeRequest("13:00", "15:00"))
	require.NoError(t, err)

	require.NotNil(t, resp.Override)
	assert.Equal(t, int64(11), resp.Override.ID)
	assert.False(t, resp.Override.IsAvailable)

	assert.Equal(t, []int64{2, 3}, repo.cancelledIDs)

	require.Len(t, resp.CancelledReservations, 2)
	for _, r := range resp.CancelledReservations {
		assert.Equal(t, domain.StatusCancelled, r.Status)
	}

	// one cancellation event per cancelled reservation, after commit
	require.Len(t, pub.cancelled, 2)
	assert.Equal(t, int64(2), pub.cancelled[0].ID)
	assert.Equal(t, int64(3), pub.cancelled[1].ID)
}

func TestUseCase_Execute_OpenWindowTouchesNothing(t *testing.T) {
	repo := &stubReservationRepo{
		active: []*domain.Reservation{activeReservation(1, "2:00 PM")},
	}
	pub := &stubPublisher{}
	uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

	req := closeRequest("13:00", "15:00")
	req.IsAvailable = true

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, resp.Override.IsAvailable)
	assert.Empty(t, resp.CancelledReservations)
	assert.Empty(t, repo.cancelledIDs)
	assert.Empty(t, pub.cancelled)
}

func TestUseCase_Execute_ClosureWithNoCoveredReservations(t *testing.T) {
	repo := &stubReservationRepo{
		active: []*domain.Reservation{activeReservation(1, "9:00 AM")},
	}
	pub := &stubPublisher{}
	uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

	resp, err := uc.Execute(context.Background(), closeRequest("13:00", "15:00"))
	require.NoError(t, err)

	assert.Empty(t, resp.CancelledReservations)
	assert.Empty(t, pub.cancelled)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "malformed start", mutate: func(r *Request) { r.StartTime = "1 PM" }, wantErr: ErrInvalidInput},
		{name: "malformed end", mutate: func(r *Request) { r.EndTime = "late" }, wantErr: ErrInvalidInput},
		{name: "start equals end", mutate: func(r *Request) { r.EndTime = "13:00" }, wantErr: ErrInvalidTimeRange},
		{name: "start after end", mutate: func(r *Request) { r.StartTime = "16:00" }, wantErr: ErrInvalidTimeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubReservationRepo{}
			uc := newUseCase(repo, &stubWorkingHoursRepo{}, &stubPublisher{})

			req := closeRequest("13:00", "15:00")
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.cancelledIDs)
		})
	}
}

func TestUseCase_Execute_PublishFailureIsNotFatal(t *testing.T) {
	repo := &stubReservationRepo{
		active: []*domain.Reservation{activeReservation(1, "2:00 PM")},
	}
	pub := &stubPublisher{err: errors.New("broker unavailable")}
	uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

	resp, err := uc.Execute(context.Background(), closeRequest("13:00", "15:00"))
	require.NoError(t, err)

	// cancellation is committed even though the event never went out
	assert.Equal(t, []int64{1}, repo.cancelledIDs)
	require.Len(t, resp.CancelledReservations, 1)
}

func TestUseCase_Execute_RepositoryErrors(t *testing.T) {
	boom := errors.New("connection refused")

	t.Run("upsert failure", func(t *testing.T) {
		uc := newUseCase(&stubReservationRepo{}, &stubWorkingHoursRepo{err: boom}, &stubPublisher{})

		_, err := uc.Execute(context.Background(), closeRequest("13:00", "15:00"))
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("list failure", func(t *testing.T) {
		uc := newUseCase(&stubReservationRepo{listErr: boom}, &stubWorkingHoursRepo{}, &stubPublisher{})

		_, err := uc.Execute(context.Background(), closeRequest("13:00", "15:00"))
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("cancel failure", func(t *testing.T) {
		repo := &stubReservationRepo{
			active:    []*domain.Reservation{activeReservation(1, "2:00 PM")},
			updateErr: boom,
		}
		pub := &stubPublisher{}
		uc := newUseCase(repo, &stubWorkingHoursRepo{}, pub)

		_, err := uc.Execute(context.Background(), closeRequest("13:00", "15:00"))
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, pub.cancelled)
	})
}
