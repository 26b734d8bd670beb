package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot grid constants: business day boundaries in canonical form
// and the fixed slot step. 9:00 AM .. 6:00 PM inclusive yields 19 slots.
const (
	GridOpenTime    = "09:00"
	GridCloseTime   = "18:00"
	SlotStepMinutes = 30
	GridSlotCount   = 19
)

// Retention policy: reservations older than two weeks and overrides for
// past dates are purged by the retention sweep, outside the booking path.
const (
	ReservationRetentionDays = 14
)
