package get_availability

import (
	"time"

	"github.com/elitecuts/booking-service/pkg/types"
)

// Request модель запроса на получение доступности слотов
type Request struct {
	Date time.Time // Дата для расчёта доступности (без времени)
}

// Response модель ответа с раскладкой слотов на дату
type Response struct {
	Date           time.Time           // Дата, на которую запрашивалась доступность
	AllSlots       []types.DisplayTime // Полная сетка слотов
	AvailableSlots []types.DisplayTime // Слоты, доступные для бронирования
	ReservedSlots  []types.DisplayTime // Слоты, занятые активными бронированиями
}
