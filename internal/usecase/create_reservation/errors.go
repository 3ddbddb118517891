package create_reservation

import "errors"

var (
	// ErrDuplicateBooking возвращается, когда у гостя уже есть активная
	// бронь на этот (телефон, дата, слот)
	ErrDuplicateBooking = errors.New("create_reservation: duplicate booking")

	// ErrSlotNotFound возвращается, когда слот инвентаря не существует
	ErrSlotNotFound = errors.New("create_reservation: time slot does not exist")

	// ErrSlotFull возвращается, когда у слота не осталось свободных мест
	ErrSlotFull = errors.New("create_reservation: time slot is full")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
