package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayTime_To24h(t *testing.T) {
	tests := []struct {
		name    string
		input   DisplayTime
		want    TimeString
		wantErr bool
	}{
		{name: "morning", input: "9:00 AM", want: "09:00"},
		{name: "afternoon", input: "2:30 PM", want: "14:30"},
		{name: "noon stays twelve", input: "12:00 PM", want: "12:00"},
		{name: "half past noon", input: "12:30 PM", want: "12:30"},
		{name: "midnight wraps to zero", input: "12:00 AM", want: "00:00"},
		{name: "last evening slot", input: "6:00 PM", want: "18:00"},
		{name: "eleven pm", input: "11:45 PM", want: "23:45"},
		{name: "missing period", input: "9:00", wantErr: true},
		{name: "lowercase period", input: "9:00 am", wantErr: true},
		{name: "hour zero", input: "0:30 AM", wantErr: true},
		{name: "hour thirteen", input: "13:00 PM", wantErr: true},
		{name: "minutes out of range", input: "9:75 AM", wantErr: true},
		{name: "garbage", input: "morning-ish", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.To24h()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDisplayTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_To12h(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		want    DisplayTime
		wantErr bool
	}{
		{name: "morning", input: "09:00", want: "9:00 AM"},
		{name: "afternoon", input: "14:30", want: "2:30 PM"},
		{name: "noon", input: "12:00", want: "12:00 PM"},
		{name: "midnight", input: "00:00", want: "12:00 AM"},
		{name: "just after midnight", input: "00:30", want: "12:30 AM"},
		{name: "evening", input: "18:00", want: "6:00 PM"},
		{name: "malformed", input: "25:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.To12h()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Conversion must round-trip on every half-hour of the day: display form is the
// stored identity, canonical form is the comparison key, and neither may drift.
func TestDisplayTime_RoundTrip(t *testing.T) {
	current := TimeString("00:00")
	for i := 0; i < 48; i++ {
		display, err := current.To12h()
		require.NoError(t, err, "to 12h: %s", current)

		back, err := display.To24h()
		require.NoError(t, err, "back to 24h: %s", display)
		assert.Equal(t, current, back)

		next, err := current.AddMinutes(30)
		if i == 47 {
			break
		}
		require.NoError(t, err)
		current = next
	}
}

func TestParseDisplayTime(t *testing.T) {
	got, err := ParseDisplayTime("4:30 PM")
	require.NoError(t, err)
	assert.Equal(t, DisplayTime("4:30 PM"), got)

	_, err = ParseDisplayTime("16:30")
	assert.ErrorIs(t, err, ErrInvalidDisplayTime)
}
