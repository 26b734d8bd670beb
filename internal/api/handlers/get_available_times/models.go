package get_available_times

import (
	"github.com/elitecuts/booking-service/internal/domain"
	getAvailability "github.com/elitecuts/booking-service/internal/usecase/get_availability"
)

// AvailableTimesResponse HTTP response model
type AvailableTimesResponse struct {
	Date           string   `json:"date"`
	AllSlots       []string `json:"allSlots"`
	AvailableSlots []string `json:"availableSlots"`
	ReservedSlots  []string `json:"reservedSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailableTimesResponse {
	all := make([]string, 0, len(resp.AllSlots))
	for _, s := range resp.AllSlots {
		all = append(all, string(s))
	}
	available := make([]string, 0, len(resp.AvailableSlots))
	for _, s := range resp.AvailableSlots {
		available = append(available, string(s))
	}
	reserved := make([]string, 0, len(resp.ReservedSlots))
	for _, s := range resp.ReservedSlots {
		reserved = append(reserved, string(s))
	}

	return &AvailableTimesResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		AllSlots:       all,
		AvailableSlots: available,
		ReservedSlots:  reserved,
	}
}
