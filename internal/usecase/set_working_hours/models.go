package set_working_hours

import (
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
	"github.com/elitecuts/booking-service/pkg/types"
)

// Request модель запроса на установку рабочих часов
type Request struct {
	Date        time.Time        // Дата переопределения (без времени)
	StartTime   types.TimeString // Начало окна в каноническом формате ("13:00")
	EndTime     types.TimeString // Конец окна в каноническом формате ("15:00")
	IsAvailable bool             // true - окно открыто, false - закрыто
}

// Response модель ответа с сохранённым переопределением и списком
// бронирований, отменённых каскадом закрытия
type Response struct {
	Override              *domain.WorkingHoursOverride
	CancelledReservations []*domain.Reservation
}
