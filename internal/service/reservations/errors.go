package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInvalidTransition возвращается, когда переход статуса запрещен
	// state machine (например, CANCELLED -> CONFIRMED)
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConflict возвращается, когда статус в хранилище уже не равен
	// ожидаемому вызывающей стороной (её представление устарело)
	ErrConflict = errors.New("reservation status has changed, refresh and try again")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
