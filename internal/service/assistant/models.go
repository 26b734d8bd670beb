package assistant

import (
	"time"

	"github.com/elitecuts/booking-service/pkg/types"
)

// Message сообщение диалога клиента с ассистентом
type Message struct {
	Role    string `json:"role"` // user или assistant
	Content string `json:"content"`
}

// AppointmentQuery извлечённые из сообщения дата и время.
// Оба поля опциональны: вопрос может касаться целого дня.
type AppointmentQuery struct {
	Date *time.Time
	Time *types.DisplayTime
}

// BusinessInfo публичная информация о барбершопе для ответов ассистента
type BusinessInfo struct {
	Name    string
	Phone   string
	Address string
	Hours   string
}
