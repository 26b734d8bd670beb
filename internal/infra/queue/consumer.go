package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc обработчик одного сообщения очереди.
// Ошибка приводит к reject без повторной постановки: зацикливание на
// ядовитом сообщении хуже потерянного письма.
type HandlerFunc func(ctx context.Context, body []byte) error

// Consumer читает события бронирований из RabbitMQ
type Consumer struct {
	url    string
	logger Logger
}

// NewConsumer создает новый экземпляр консьюмера
func NewConsumer(url string, logger Logger) *Consumer {
	return &Consumer{
		url:    url,
		logger: logger,
	}
}

// Run подписывается на очередь и обрабатывает сообщения до отмены контекста.
// Переподключается с экспоненциальной задержкой при обрывах соединения.
func (c *Consumer) Run(ctx context.Context, queueName string, handler HandlerFunc) error {
	backoff := time.Second

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("queue: dial failed: %v; retrying in %s", err, backoff)
			if !sleepCtx(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := c.consumeLoop(ctx, conn, queueName, handler); err != nil {
			if errors.Is(err, context.Canceled) {
				_ = conn.Close()
				return err
			}
			c.logger.Warn("queue: consume loop for %q ended: %v; reconnecting", queueName, err)
		}
		_ = conn.Close()

		if !sleepCtx(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consumeLoop(ctx context.Context, conn *amqp.Connection, queueName string, handler HandlerFunc) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: channel open: %v", ErrConsume, err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		c.logger.Warn("queue: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: queue declare: %v", ErrConsume, err)
	}

	msgs, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConsume, err)
	}

	for {
		select {
		case <-ctx.Done():
			return context.Canceled
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("%w: deliveries channel closed", ErrConsume)
			}
			if err := handler(ctx, d.Body); err != nil {
				c.logger.Error("queue: handle message from %q failed: %v", queueName, err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// sleepCtx ждёт d или отмены контекста, возвращает false при отмене
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
