package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeSlot возвращается, когда запрошенное время не входит в сетку слотов
	ErrInvalidTimeSlot = errors.New("time is not a valid slot")

	// ErrSlotTaken возвращается, когда слот уже занят активным бронированием
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrOutsideWorkingHours возвращается, когда слот попадает в закрытое окно
	ErrOutsideWorkingHours = errors.New("slot is outside working hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
