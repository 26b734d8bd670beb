package notifier

import (
	"fmt"
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
	"github.com/elitecuts/booking-service/internal/infra/queue"
)

// Формат даты в письмах, например "15 October 2025, Wednesday"
const letterDateFormat = "2 January 2006, Monday"

// spokenDate превращает дату события в человекочитаемую строку.
// Непарсящаяся дата уходит в письмо как есть: письмо важнее формата.
func spokenDate(raw string) string {
	parsed, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return raw
	}
	return parsed.Format(letterDateFormat)
}

// confirmationSubject тема письма-подтверждения
func confirmationSubject(businessName string) string {
	return fmt.Sprintf("Reservation Confirmation - %s", businessName)
}

// cancellationSubject тема письма об отмене
func cancellationSubject(businessName string) string {
	return fmt.Sprintf("Reservation Cancelled - %s", businessName)
}

// confirmationBody собирает HTML письма-подтверждения
func confirmationBody(event queue.ReservationEvent, businessName, businessPhone string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Reservation Confirmation</title></head>
<body style="margin: 0; padding: 0; background-color: #f8f9fa; font-family: 'Segoe UI', Roboto, sans-serif;">
  <div style="max-width: 500px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: #3C2415; padding: 40px; text-align: center;">
      <h1 style="color: #F0EDE6; margin: 0; font-size: 42px; font-family: Georgia, serif;">%[1]s</h1>
    </div>
    <div style="padding: 30px;">
      <h2 style="color: #2c3e50; text-align: center;">Reservation Confirmation</h2>
      <p style="color: #5a6c7d; text-align: center;">
        Dear <strong style="color: #3C2415;">%[2]s</strong>, your reservation has been successfully confirmed.
      </p>
      <div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px;">
        <table style="width: 100%%; border-collapse: collapse;">
          <tr><td style="color: #6c757d;">Service</td><td style="color: #2c3e50; text-align: right;"><strong>%[3]s</strong></td></tr>
          <tr><td style="color: #6c757d;">Date</td><td style="color: #2c3e50; text-align: right;"><strong>%[4]s</strong></td></tr>
          <tr><td style="color: #6c757d;">Time</td><td style="color: #3C2415; text-align: right;"><strong>%[5]s</strong></td></tr>
        </table>
      </div>
      <div style="border-left: 4px solid #3C2415; padding: 20px; margin-top: 25px; background-color: #f8f9fa;">
        <ul style="margin: 0; padding-left: 20px; color: #5a6c7d;">
          <li>Please arrive 5 minutes before your appointment</li>
          <li>For changes, please notify us at least 2 hours in advance</li>
          <li>For cancellations, you can call %[6]s</li>
        </ul>
      </div>
      <p style="color: #6c757d; text-align: center; margin-top: 25px;">Thank you for your appointment.</p>
    </div>
  </div>
</body>
</html>`,
		businessName, event.Name, event.Service, spokenDate(event.Date), event.Time, businessPhone)
}

// cancellationBody собирает HTML письма об отмене
func cancellationBody(event queue.ReservationEvent, businessName, businessPhone string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Reservation Cancelled</title></head>
<body style="margin: 0; padding: 0; background-color: #f8f9fa; font-family: 'Segoe UI', Roboto, sans-serif;">
  <div style="max-width: 500px; margin: 0 auto; background-color: #ffffff;">
    <div style="background: #3C2415; padding: 40px; text-align: center;">
      <h1 style="color: #F0EDE6; margin: 0; font-size: 42px; font-family: Georgia, serif;">%[1]s</h1>
    </div>
    <div style="padding: 30px;">
      <h2 style="color: #2c3e50; text-align: center;">Reservation Cancelled</h2>
      <p style="color: #5a6c7d; text-align: center;">
        Dear <strong style="color: #3C2415;">%[2]s</strong>, your reservation below has been cancelled.
      </p>
      <div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px;">
        <table style="width: 100%%; border-collapse: collapse;">
          <tr><td style="color: #6c757d;">Service</td><td style="color: #2c3e50; text-align: right;"><strong>%[3]s</strong></td></tr>
          <tr><td style="color: #6c757d;">Date</td><td style="color: #2c3e50; text-align: right;"><strong>%[4]s</strong></td></tr>
          <tr><td style="color: #6c757d;">Time</td><td style="color: #3C2415; text-align: right;"><strong>%[5]s</strong></td></tr>
        </table>
      </div>
      <p style="color: #5a6c7d; text-align: center; margin-top: 25px;">
        We apologize for the inconvenience. To book a new appointment, visit our website or call us at %[6]s.
      </p>
    </div>
  </div>
</body>
</html>`,
		businessName, event.Name, event.Service, spokenDate(event.Date), event.Time, businessPhone)
}
