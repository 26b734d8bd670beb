package queue

import "errors"

var (
	// ErrDial возвращается при недоступности брокера
	ErrDial = errors.New("queue: failed to dial broker")

	// ErrPublish возвращается при ошибке публикации сообщения
	ErrPublish = errors.New("queue: failed to publish message")

	// ErrConsume возвращается при ошибке подписки на очередь
	ErrConsume = errors.New("queue: failed to consume")
)
