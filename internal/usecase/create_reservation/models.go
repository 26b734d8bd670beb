package create_reservation

import (
	"time"

	"github.com/elitecuts/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name    string            // Имя клиента
	Email   string            // Email клиента
	Phone   string            // Телефон клиента
	Service string            // Название услуги
	Date    time.Time         // Дата бронирования (без времени)
	Time    types.DisplayTime // Слот в отображаемом формате (например, "2:00 PM")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Service   string
	Date      time.Time
	Time      types.DisplayTime
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
