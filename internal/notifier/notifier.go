package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/elitecuts/booking-service/internal/infra/queue"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service отправляет клиентам письма о подтверждении и отмене бронирований.
// Работает консьюмером очередей событий: HTTP-запрос клиента никогда
// не ждёт SMTP.
type Service struct {
	smtpHost      string
	smtpPort      int
	from          string
	password      string
	businessName  string
	businessPhone string
	logger        Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(smtpHost string, smtpPort int, from, password, businessName, businessPhone string, logger Logger) *Service {
	return &Service{
		smtpHost:      smtpHost,
		smtpPort:      smtpPort,
		from:          from,
		password:      password,
		businessName:  businessName,
		businessPhone: businessPhone,
		logger:        logger,
	}
}

// HandleConfirmed обрабатывает событие подтверждения бронирования
func (s *Service) HandleConfirmed(ctx context.Context, body []byte) error {
	var event queue.ReservationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal confirmed event: %w", err)
	}

	s.logger.Info("notifier: sending confirmation for reservation id=%d to %s",
		event.ReservationID, event.Email)

	return s.sendMail(event.Email,
		confirmationSubject(s.businessName),
		confirmationBody(event, s.businessName, s.businessPhone))
}

// HandleCancelled обрабатывает событие отмены бронирования
func (s *Service) HandleCancelled(ctx context.Context, body []byte) error {
	var event queue.ReservationEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal cancelled event: %w", err)
	}

	s.logger.Info("notifier: sending cancellation for reservation id=%d to %s",
		event.ReservationID, event.Email)

	return s.sendMail(event.Email,
		cancellationSubject(s.businessName),
		cancellationBody(event, s.businessName, s.businessPhone))
}

// sendMail отправляет HTML письмо через SMTP с STARTTLS
func (s *Service) sendMail(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.smtpHost, s.smtpPort)
	auth := smtp.PlainAuth("", s.from, s.password, s.smtpHost)

	headers := []string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
	}
	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message)); err != nil {
		s.logger.Error("notifier: failed to send email to %s: %v", to, err)
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	s.logger.Info("notifier: email sent to %s", to)
	return nil
}
