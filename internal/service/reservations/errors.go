package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAlreadyCancelled возвращается при повторной отмене бронирования
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")

	// ErrPastReservation возвращается при попытке отменить прошедшее бронирование
	ErrPastReservation = errors.New("reservation date is in the past")

	// ErrInvalidView возвращается при неизвестном представлении списка
	ErrInvalidView = errors.New("invalid reservations view")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
