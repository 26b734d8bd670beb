package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitecuts/booking-service/internal/domain"
	reservationRepo "github.com/elitecuts/booking-service/internal/infra/storage/reservation"
	"github.com/elitecuts/booking-service/internal/service/reservations/models"
)

type stubRepo struct {
	byID      *domain.Reservation
	getErr    error
	list      []*domain.Reservation
	listErr   error
	updateErr error

	lastFilter *domain.ReservationsFilter
	updated    []int64
}

func (s *stubRepo) GetByID(_ context.Context, _ int64) (*domain.Reservation, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.byID, nil
}

func (s *stubRepo) ListWithFilter(_ context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	s.lastFilter = &filter
	return s.list, s.listErr
}

func (s *stubRepo) UpdateStatus(_ context.Context, id int64, _ domain.ReservationStatus) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, id)
	return nil
}

type stubPublisher struct {
	err       error
	cancelled []*domain.Reservation
}

func (s *stubPublisher) PublishReservationCancelled(_ context.Context, r *domain.Reservation) error {
	if s.err != nil {
		return s.err
	}
	s.cancelled = append(s.cancelled, r)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testNow = time.Date(2026, 4, 10, 11, 0, 0, 0, time.UTC)

func newService(repo *stubRepo, pub *stubPublisher) *Service {
	svc := NewService(repo, pub, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func sampleReservation(id int64, date time.Time, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:      id,
		Name:    "John Smith",
		Email:   "john@example.com",
		Phone:   "+1 555 0100",
		Service: "Classic Haircut",
		Date:    date,
		Time:    "2:00 PM",
		Status:  status,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := &stubRepo{byID: sampleReservation(5, testNow, domain.StatusActive)}
		svc := newService(repo, &stubPublisher{})

		resp, err := svc.GetByID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
		assert.Equal(t, "2026-04-10", resp.Date)
		assert.Equal(t, "2:00 PM", resp.Time)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubRepo{getErr: reservationRepo.ErrReservationNotFound}
		svc := newService(repo, &stubPublisher{})

		_, err := svc.GetByID(context.Background(), 5)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &stubRepo{getErr: errors.New("connection refused")}
		svc := newService(repo, &stubPublisher{})

		_, err := svc.GetByID(context.Background(), 5)
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_List_ViewFilters(t *testing.T) {
	today := time.Date(testNow.Year(), testNow.Month(), testNow.Day(), 0, 0, 0, 0, testNow.Location())

	tests := []struct {
		name   string
		view   string
		verify func(t *testing.T, f *domain.ReservationsFilter)
	}{
		{
			name: "upcoming is active from today",
			view: models.ViewUpcoming,
			verify: func(t *testing.T, f *domain.ReservationsFilter) {
				require.NotNil(t, f.DateFrom)
				assert.Equal(t, today, *f.DateFrom)
				require.NotNil(t, f.Status)
				assert.Equal(t, domain.StatusActive, *f.Status)
				assert.Nil(t, f.DateBefore)
			},
		},
		{
			name: "past is active strictly before today",
			view: models.ViewPast,
			verify: func(t *testing.T, f *domain.ReservationsFilter) {
				require.NotNil(t, f.DateBefore)
				assert.Equal(t, today, *f.DateBefore)
				require.NotNil(t, f.Status)
				assert.Equal(t, domain.StatusActive, *f.Status)
				assert.Nil(t, f.DateFrom)
			},
		},
		{
			name: "cancelled ignores dates",
			view: models.ViewCancelled,
			verify: func(t *testing.T, f *domain.ReservationsFilter) {
				require.NotNil(t, f.Status)
				assert.Equal(t, domain.StatusCancelled, *f.Status)
				assert.Nil(t, f.DateFrom)
				assert.Nil(t, f.DateBefore)
			},
		},
		{
			name: "all is unfiltered",
			view: models.ViewAll,
			verify: func(t *testing.T, f *domain.ReservationsFilter) {
				assert.Nil(t, f.Status)
				assert.Nil(t, f.DateFrom)
				assert.Nil(t, f.DateBefore)
				assert.Nil(t, f.Date)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{list: []*domain.Reservation{sampleReservation(1, testNow, domain.StatusActive)}}
			svc := newService(repo, &stubPublisher{})

			resp, err := svc.List(context.Background(), tt.view)
			require.NoError(t, err)
			assert.Equal(t, 1, resp.Total)

			require.NotNil(t, repo.lastFilter)
			tt.verify(t, repo.lastFilter)
		})
	}
}

func TestService_List_UnknownView(t *testing.T) {
	svc := newService(&stubRepo{}, &stubPublisher{})

	_, err := svc.List(context.Background(), "recent")
	assert.ErrorIs(t, err, ErrInvalidView)
}

func TestService_ListByDate(t *testing.T) {
	date := time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)

	t.Run("filters by date and active status", func(t *testing.T) {
		repo := &stubRepo{list: []*domain.Reservation{sampleReservation(1, date, domain.StatusActive)}}
		svc := newService(repo, &stubPublisher{})

		resp, err := svc.ListByDate(context.Background(), date)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)

		require.NotNil(t, repo.lastFilter)
		require.NotNil(t, repo.lastFilter.Date)
		assert.Equal(t, date, *repo.lastFilter.Date)
		require.NotNil(t, repo.lastFilter.Status)
		assert.Equal(t, domain.StatusActive, *repo.lastFilter.Status)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		svc := newService(&stubRepo{}, &stubPublisher{})

		_, err := svc.ListByDate(context.Background(), time.Time{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Cancel(t *testing.T) {
	tomorrow := testNow.AddDate(0, 0, 1)
	yesterday := testNow.AddDate(0, 0, -1)

	t.Run("success", func(t *testing.T) {
		repo := &stubRepo{byID: sampleReservation(5, tomorrow, domain.StatusActive)}
		pub := &stubPublisher{}
		svc := newService(repo, pub)

		resp, err := svc.Cancel(context.Background(), 5)
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Equal(t, []int64{5}, repo.updated)
		require.Len(t, pub.cancelled, 1)
		assert.Equal(t, int64(5), pub.cancelled[0].ID)
	})

	t.Run("today can still be cancelled", func(t *testing.T) {
		repo := &stubRepo{byID: sampleReservation(5, testNow, domain.StatusActive)}
		svc := newService(repo, &stubPublisher{})

		_, err := svc.Cancel(context.Background(), 5)
		require.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &stubRepo{getErr: reservationRepo.ErrReservationNotFound}
		svc := newService(repo, &stubPublisher{})

		_, err := svc.Cancel(context.Background(), 5)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := &stubRepo{byID: sampleReservation(5, tomorrow, domain.StatusCancelled)}
		svc := newService(repo, &stubPublisher{})

		_, err := svc.Cancel(context.Background(), 5)
		assert.ErrorIs(t, err, ErrAlreadyCancelled)
		assert.Empty(t, repo.updated)
	})

	t.Run("past reservation", func(t *testing.T) {
		repo := &stubRepo{byID: sampleReservation(5, yesterday, domain.StatusActive)}
		svc := newService(repo, &stubPublisher{})

		_, err := svc.Cancel(context.Background(), 5)
		assert.ErrorIs(t, err, ErrPastReservation)
		assert.Empty(t, repo.updated)
	})

	t.Run("update failure", func(t *testing.T) {
		repo := &stubRepo{
			byID:      sampleReservation(5, tomorrow, domain.StatusActive),
			updateErr: errors.New("connection refused"),
		}
		svc := newService(repo, &stubPublisher{})

		_, err := svc.Cancel(context.Background(), 5)
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("publish failure is not fatal", func(t *testing.T) {
		repo := &stubRepo{byID: sampleReservation(5, tomorrow, domain.StatusActive)}
		pub := &stubPublisher{err: errors.New("broker unavailable")}
		svc := newService(repo, pub)

		resp, err := svc.Cancel(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})
}
