package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitecuts/booking-service/pkg/types"
)

func TestAllSlots(t *testing.T) {
	slots := AllSlots()

	require.Len(t, slots, GridSlotCount)
	assert.Equal(t, types.DisplayTime("9:00 AM"), slots[0])
	assert.Equal(t, types.DisplayTime("12:00 PM"), slots[6])
	assert.Equal(t, types.DisplayTime("12:30 PM"), slots[7])
	assert.Equal(t, types.DisplayTime("6:00 PM"), slots[len(slots)-1])

	// chronological, step of exactly 30 minutes
	for i := 1; i < len(slots); i++ {
		prev, err := slots[i-1].To24h()
		require.NoError(t, err)
		curr, err := slots[i].To24h()
		require.NoError(t, err)

		next, err := prev.AddMinutes(SlotStepMinutes)
		require.NoError(t, err)
		assert.Equal(t, next, curr)
	}
}

func TestAllSlots_ReturnsCopy(t *testing.T) {
	first := AllSlots()
	first[0] = "garbage"

	assert.Equal(t, types.DisplayTime("9:00 AM"), AllSlots()[0])
}

func TestIsGridSlot(t *testing.T) {
	tests := []struct {
		name string
		slot types.DisplayTime
		want bool
	}{
		{name: "opening slot", slot: "9:00 AM", want: true},
		{name: "noon slot", slot: "12:00 PM", want: true},
		{name: "closing slot", slot: "6:00 PM", want: true},
		{name: "before opening", slot: "8:30 AM", want: false},
		{name: "after closing", slot: "6:30 PM", want: false},
		{name: "off-grid quarter hour", slot: "2:15 PM", want: false},
		{name: "canonical form is not a slot", slot: "14:00", want: false},
		{name: "empty", slot: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGridSlot(tt.slot))
		})
	}
}
