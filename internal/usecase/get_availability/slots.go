package get_availability

import (
	"fmt"

	"github.com/elitecuts/booking-service/internal/domain"
	"github.com/elitecuts/booking-service/pkg/types"
)

// reservedTimes собирает множество занятых слотов из активных бронирований
func reservedTimes(reservations []*domain.Reservation) map[types.DisplayTime]struct{} {
	reserved := make(map[types.DisplayTime]struct{}, len(reservations))
	for _, r := range reservations {
		reserved[r.Time] = struct{}{}
	}
	return reserved
}

// isWithinClosedWindow проверяет, попадает ли каноническое время слота
// хотя бы в одно закрытое окно [start, end)
func isWithinClosedWindow(t types.TimeString, closed []*domain.WorkingHoursOverride) bool {
	for _, override := range closed {
		if override.Covers(t) {
			return true
		}
	}
	return false
}

// computeAvailability раскладывает полную сетку слотов на доступные и занятые.
// Занятыми считаются слоты активных бронирований и слоты внутри закрытых окон:
// закрытое окно помечает свои слоты занятыми, а не прячет их. Слот, занятый
// бронированием внутри закрытого окна, попадает в список занятых один раз.
func computeAvailability(
	reserved map[types.DisplayTime]struct{},
	closed []*domain.WorkingHoursOverride,
) (available, reservedOut []types.DisplayTime, err error) {
	available = make([]types.DisplayTime, 0, domain.GridSlotCount)
	reservedOut = make([]types.DisplayTime, 0, len(reserved))

	for _, slot := range domain.AllSlots() {
		if _, taken := reserved[slot]; taken {
			reservedOut = append(reservedOut, slot)
			continue
		}

		canonical, convErr := slot.To24h()
		if convErr != nil {
			return nil, nil, fmt.Errorf("convert slot %q: %w", slot, convErr)
		}

		if isWithinClosedWindow(canonical, closed) {
			reservedOut = append(reservedOut, slot)
			continue
		}

		available = append(available, slot)
	}

	return available, reservedOut, nil
}
