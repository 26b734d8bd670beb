package domain

import (
	"github.com/elitecuts/booking-service/pkg/types"
)

// gridSlots is the fixed daily slot grid shared by every date:
// 9:00 AM through 6:00 PM in 30-minute increments, 19 values.
// Slot identity is the display-form string; working-hours comparisons
// convert to canonical form instead of relying on grid membership.
var gridSlots = buildGrid()

func buildGrid() []types.DisplayTime {
	slots := make([]types.DisplayTime, 0, GridSlotCount)
	current := types.TimeString(GridOpenTime)

	for !current.IsAfter(types.TimeString(GridCloseTime)) {
		display, err := current.To12h()
		if err != nil {
			// grid constants are static and valid; a failure here is a programming error
			panic(err)
		}
		slots = append(slots, display)

		next, err := current.AddMinutes(SlotStepMinutes)
		if err != nil {
			panic(err)
		}
		current = next
	}

	return slots
}

// AllSlots returns the full slot grid in chronological order
func AllSlots() []types.DisplayTime {
	out := make([]types.DisplayTime, len(gridSlots))
	copy(out, gridSlots)
	return out
}

// IsGridSlot returns true if the display time is a member of the slot grid
func IsGridSlot(t types.DisplayTime) bool {
	for _, slot := range gridSlots {
		if slot == t {
			return true
		}
	}
	return false
}
