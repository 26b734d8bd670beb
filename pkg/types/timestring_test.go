package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing colon", input: "0900", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "12:60", wantErr: true},
		{name: "non-numeric", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 15, 14, 30, 45, 0, time.UTC))
	assert.Equal(t, TimeString("14:30"), ts)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.False(t, TimeString("09:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("17:30"))
	assert.False(t, TimeString("17:30").IsAfter("18:00"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))

	// comparisons against malformed values never succeed
	assert.False(t, TimeString("09:00").IsBefore("bogus"))
	assert.False(t, TimeString("bogus").IsAfter("09:00"))
}

func TestTimeString_InRange(t *testing.T) {
	tests := []struct {
		name       string
		value      TimeString
		start, end TimeString
		want       bool
	}{
		{name: "inside window", value: "14:00", start: "13:00", end: "15:00", want: true},
		{name: "at start is included", value: "13:00", start: "13:00", end: "15:00", want: true},
		{name: "at end is excluded", value: "15:00", start: "13:00", end: "15:00", want: false},
		{name: "before window", value: "12:30", start: "13:00", end: "15:00", want: false},
		{name: "after window", value: "15:30", start: "13:00", end: "15:00", want: false},
		{name: "malformed value", value: "nope", start: "13:00", end: "15:00", want: false},
		{name: "malformed bound", value: "14:00", start: "13:00", end: "oops", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.InRange(tt.start, tt.end))
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		input   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "plus half hour", input: "09:00", minutes: 30, want: "09:30"},
		{name: "crosses hour boundary", input: "09:45", minutes: 30, want: "10:15"},
		{name: "zero shift", input: "17:30", minutes: 0, want: "17:30"},
		{name: "negative shift", input: "10:00", minutes: -30, want: "09:30"},
		{name: "past midnight", input: "23:45", minutes: 30, wantErr: true},
		{name: "before day start", input: "00:15", minutes: -30, wantErr: true},
		{name: "malformed input", input: "late", minutes: 30, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.input.AddMinutes(tt.minutes)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 1, 2, 11, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("11:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
