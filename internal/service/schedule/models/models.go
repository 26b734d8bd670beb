package models

import (
	"github.com/elitecuts/booking-service/internal/domain"
)

// WorkingHoursResponse ответ с данными переопределения рабочих часов
type WorkingHoursResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "13:00"
	EndTime     string `json:"endTime"`   // "15:00"
	IsAvailable bool   `json:"isAvailable"`
}

// WorkingHoursListResponse ответ со списком переопределений
type WorkingHoursListResponse struct {
	WorkingHours []WorkingHoursResponse `json:"workingHours"`
	Total        int                    `json:"total"`
}

// FromDomainOverride конвертирует domain модель в response
func FromDomainOverride(o *domain.WorkingHoursOverride) *WorkingHoursResponse {
	return &WorkingHoursResponse{
		ID:          o.ID,
		Date:        o.Date.Format(domain.DateFormat),
		StartTime:   string(o.StartTime),
		EndTime:     string(o.EndTime),
		IsAvailable: o.IsAvailable,
	}
}

// FromDomainOverrideList конвертирует список domain моделей в response
func FromDomainOverrideList(overrides []*domain.WorkingHoursOverride) *WorkingHoursListResponse {
	result := make([]WorkingHoursResponse, 0, len(overrides))
	for _, o := range overrides {
		result = append(result, *FromDomainOverride(o))
	}
	return &WorkingHoursListResponse{
		WorkingHours: result,
		Total:        len(result),
	}
}
