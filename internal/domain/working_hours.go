package domain

import (
	"time"

	"github.com/elitecuts/booking-service/pkg/types"
)

// WorkingHoursOverride represents an admin-declared open or closed sub-range
// of a specific date, layered on top of the default-open slot grid.
// StartTime/EndTime are canonical 24-hour strings forming the half-open
// interval [StartTime, EndTime). A date with no override records is fully
// open: absence is not closure.
type WorkingHoursOverride struct {
	ID          int64
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed returns true if the override marks its range as unavailable
func (o *WorkingHoursOverride) IsClosed() bool {
	return !o.IsAvailable
}

// Covers returns true if the canonical time falls inside [StartTime, EndTime)
func (o *WorkingHoursOverride) Covers(t types.TimeString) bool {
	return t.InRange(o.StartTime, o.EndTime)
}
