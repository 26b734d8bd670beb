package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/elitecuts/booking-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события бронирований в RabbitMQ.
// Соединение открывается на каждую публикацию: событий немного, а короткое
// соединение избавляет от слежения за разрывами. Очереди durable, сообщения
// persistent - письмо не должно теряться при рестарте брокера.
type Publisher struct {
	url    string
	logger Logger
}

// NewPublisher создает новый экземпляр публикатора событий
func NewPublisher(url string, logger Logger) *Publisher {
	return &Publisher{
		url:    url,
		logger: logger,
	}
}

// PublishReservationConfirmed публикует событие подтверждения бронирования
func (p *Publisher) PublishReservationConfirmed(ctx context.Context, reservation *domain.Reservation) error {
	return p.publish(ctx, QueueReservationConfirmed, NewReservationEvent(reservation, time.Now()))
}

// PublishReservationCancelled публикует событие отмены бронирования
func (p *Publisher) PublishReservationCancelled(ctx context.Context, reservation *domain.Reservation) error {
	return p.publish(ctx, QueueReservationCancelled, NewReservationEvent(reservation, time.Now()))
}

func (p *Publisher) publish(ctx context.Context, queueName string, event ReservationEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.logger.Error("queue: dial failed: %v", err)
		return fmt.Errorf("%w: %v", ErrDial, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.Error("queue: channel open failed: %v", err)
		return fmt.Errorf("%w: channel open: %v", ErrPublish, err)
	}
	defer func() { _ = ch.Close() }()

	// Идемпотентное объявление очереди
	if _, err := ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		p.logger.Error("queue: declare %q failed: %v", queueName, err)
		return fmt.Errorf("%w: queue declare: %v", ErrPublish, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = имя очереди
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		p.logger.Error("queue: publish to %q failed: %v", queueName, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	p.logger.Info("queue: published reservation id=%d to %q", event.ReservationID, queueName)
	return nil
}
