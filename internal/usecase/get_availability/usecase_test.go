package get_availability

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
	reservations []*domain.Reservation
	err          error
}

func (s *stubReservationRepo) ListActiveByDate(_ context.Context, _ time.Time) ([]*domain.Reservation, error) {
	return s.reservations, s.err
}

type stubWorkingHoursRepo struct {
	closed []*domain.WorkingHoursOverride
	err    error
}

func (s *stubWorkingHoursRepo) ListClosedByDate(_ context.Context, _ time.Time) ([]*domain.WorkingHoursOverride, error) {
	return s.closed, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeReservation(id int64, slot types.DisplayTime) *domain.Reservation {
	return &domain.Reservation{
		ID:     id,
		Time:   slot,
		Status: domain.StatusActive,
	}
}

func closedWindow(start, end types.TimeString) *domain.WorkingHoursOverride {
	return &domain.WorkingHoursOverride{
		StartTime:   start,
		EndTime:     end,
		IsAvailable: false,
	}
}

func TestUseCase_Execute(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		reservations  []*domain.Reservation
		closed        []*domain.WorkingHoursOverride
		wantAvailable int
		wantReserved  []types.DisplayTime
		notAvailable  []types.DisplayTime
	}{
		{
			name:          "no overrides means fully open",
			wantAvailable: domain.GridSlotCount,
		},
		{
			name: "reserved slots are excluded from available",
			reservations: []*domain.Reservation{
				activeReservation(1, "2:00 PM"),
				activeReservation(2, "9:00 AM"),
			},
			wantAvailable: domain.GridSlotCount - 2,
			wantReserved:  []types.DisplayTime{"9:00 AM", "2:00 PM"},
		},
		{
			name:   "closed window slots become reserved",
			closed: []*domain.WorkingHoursOverride{closedWindow("13:00", "15:00")},
			// 1:00, 1:30, 2:00, 2:30 PM fall inside [13:00, 15:00)
			wantAvailable: domain.GridSlotCount - 4,
			wantReserved:  []types.DisplayTime{"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM"},
			notAvailable:  []types.DisplayTime{"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM"},
		},
		{
			name: "reservation inside closed window is not duplicated",
			reservations: []*domain.Reservation{
				activeReservation(1, "2:00 PM"),
			},
			closed:        []*domain.WorkingHoursOverride{closedWindow("13:00", "15:00")},
			wantAvailable: domain.GridSlotCount - 4,
			wantReserved:  []types.DisplayTime{"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM"},
		},
		{
			name: "multiple closed windows",
			closed: []*domain.WorkingHoursOverride{
				closedWindow("09:00", "10:00"),
				closedWindow("17:00", "18:30"),
			},
			// 9:00, 9:30 AM and 5:00, 5:30, 6:00 PM are covered
			wantAvailable: domain.GridSlotCount - 5,
			wantReserved:  []types.DisplayTime{"9:00 AM", "9:30 AM", "5:00 PM", "5:30 PM", "6:00 PM"},
			notAvailable:  []types.DisplayTime{"9:00 AM", "9:30 AM", "5:00 PM", "6:00 PM"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(
				&stubReservationRepo{reservations: tt.reservations},
				&stubWorkingHoursRepo{closed: tt.closed},
				nopLogger{},
			)

			resp, err := uc.Execute(context.Background(), &Request{Date: date})
			require.NoError(t, err)

			assert.Equal(t, date, resp.Date)
			assert.Len(t, resp.AllSlots, domain.GridSlotCount)
			assert.Len(t, resp.AvailableSlots, tt.wantAvailable)
			assert.ElementsMatch(t, tt.wantReserved, resp.ReservedSlots)

			// every grid slot lands in exactly one of the two partitions
			assert.Equal(t, domain.GridSlotCount, len(resp.AvailableSlots)+len(resp.ReservedSlots))

			for _, slot := range tt.notAvailable {
				assert.NotContains(t, resp.AvailableSlots, slot)
			}
			for _, slot := range tt.wantReserved {
				assert.NotContains(t, resp.AvailableSlots, slot)
			}
		})
	}
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := NewUseCase(&stubReservationRepo{}, &stubWorkingHoursRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_RepositoryErrors(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	boom := errors.New("connection refused")

	t.Run("reservation repo failure", func(t *testing.T) {
		uc := NewUseCase(&stubReservationRepo{err: boom}, &stubWorkingHoursRepo{}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("working hours repo failure", func(t *testing.T) {
		uc := NewUseCase(&stubReservationRepo{}, &stubWorkingHoursRepo{err: boom}, nopLogger{})

		_, err := uc.Execute(context.Background(), &Request{Date: date})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestUseCase_IsSlotAvailable(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		&stubReservationRepo{reservations: []*domain.Reservation{activeReservation(1, "2:00 PM")}},
		&stubWorkingHoursRepo{closed: []*domain.WorkingHoursOverride{closedWindow("09:00", "10:00")}},
		nopLogger{},
	)

	free, err := uc.IsSlotAvailable(context.Background(), &Request{Date: date}, "3:00 PM")
	require.NoError(t, err)
	assert.True(t, free)

	taken, err := uc.IsSlotAvailable(context.Background(), &Request{Date: date}, "2:00 PM")
	require.NoError(t, err)
	assert.False(t, taken)

	inClosed, err := uc.IsSlotAvailable(context.Background(), &Request{Date: date}, "9:30 AM")
	require.NoError(t, err)
	assert.False(t, inClosed)

	offGrid, err := uc.IsSlotAvailable(context.Background(), &Request{Date: date}, "2:15 PM")
	require.NoError(t, err)
	assert.False(t, offGrid)

	_, err = uc.IsSlotAvailable(context.Background(), &Request{}, "3:00 PM")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_IsSlotAvailable_RepositoryErrors(t *testing.T) {
	date := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	boom := errors.New("connection refused")

	t.Run("reservation repo failure", func(t *testing.T) {
		uc := NewUseCase(&stubReservationRepo{err: boom}, &stubWorkingHoursRepo{}, nopLogger{})

		_, err := uc.IsSlotAvailable(context.Background(), &Request{Date: date}, "3:00 PM")
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("working hours repo failure", func(t *testing.T) {
		uc := NewUseCase(&stubReservationRepo{}, &stubWorkingHoursRepo{err: boom}, nopLogger{})

		_, err := uc.IsSlotAvailable(context.Background(), &Request{Date: date}, "3:00 PM")
		assert.ErrorIs(t, err, ErrInternal)
	})
}
