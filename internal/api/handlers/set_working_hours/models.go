package set_working_hours

import (
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
	scheduleModels "github.com/elitecuts/booking-service/internal/service/schedule/models"
	setWorkingHours "github.com/elitecuts/booking-service/internal/usecase/set_working_hours"
	"github.com/elitecuts/booking-service/pkg/types"
)

// SetWorkingHoursRequest HTTP request model
type SetWorkingHoursRequest struct {
	Date        string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "13:00"
	EndTime     string `json:"endTime"`   // "15:00"
	IsAvailable bool   `json:"isAvailable"`
}

// CancelledReservation краткие сведения об отменённом каскадом бронировании
type CancelledReservation struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Service string `json:"service"`
	Time    string `json:"time"`
}

// SetWorkingHoursResponse HTTP response model
type SetWorkingHoursResponse struct {
	WorkingHours          scheduleModels.WorkingHoursResponse `json:"workingHours"`
	CancelledReservations []CancelledReservation              `json:"cancelledReservations"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetWorkingHoursRequest) ToUseCaseRequest() (*setWorkingHours.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &setWorkingHours.Request{
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		IsAvailable: r.IsAvailable,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setWorkingHours.Response) *SetWorkingHoursResponse {
	cancelled := make([]CancelledReservation, 0, len(resp.CancelledReservations))
	for _, r := range resp.CancelledReservations {
		cancelled = append(cancelled, CancelledReservation{
			ID:      r.ID,
			Name:    r.Name,
			Service: r.Service,
			Time:    string(r.Time),
		})
	}

	return &SetWorkingHoursResponse{
		WorkingHours:          *scheduleModels.FromDomainOverride(resp.Override),
		CancelledReservations: cancelled,
	}
}
