package openai

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("openai client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от API
	ErrInvalidResponse = errors.New("openai client: invalid response")

	// ErrEmptyCompletion возвращается, когда API вернул ответ без вариантов
	ErrEmptyCompletion = errors.New("openai client: empty completion")

	// ErrServiceDegraded возвращается при недоступности API
	// Ассистент в этом случае переходит на правила без модели
	ErrServiceDegraded = errors.New("openai unavailable: graceful degradation applied")
)
