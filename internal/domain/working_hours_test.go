package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elitecuts/booking-service/pkg/types"
)

func TestWorkingHoursOverride_Covers(t *testing.T) {
	override := &WorkingHoursOverride{
		StartTime:   "13:00",
		EndTime:     "15:00",
		IsAvailable: false,
	}

	tests := []struct {
		name string
		time types.TimeString
		want bool
	}{
		{name: "inside window", time: "14:00", want: true},
		{name: "window start is covered", time: "13:00", want: true},
		{name: "window end is not covered", time: "15:00", want: false},
		{name: "just before end", time: "14:30", want: true},
		{name: "before window", time: "12:30", want: false},
		{name: "after window", time: "15:30", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, override.Covers(tt.time))
		})
	}
}

func TestWorkingHoursOverride_IsClosed(t *testing.T) {
	closed := &WorkingHoursOverride{IsAvailable: false}
	assert.True(t, closed.IsClosed())

	open := &WorkingHoursOverride{IsAvailable: true}
	assert.False(t, open.IsClosed())
}
