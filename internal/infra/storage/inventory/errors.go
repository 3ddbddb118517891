package inventory

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот инвентаря не найден
	ErrSlotNotFound = errors.New("inventory.repository: slot not found")

	// ErrSlotFull возвращается, когда у слота не осталось свободных мест
	// (условный инкремент не изменил ни одной строки)
	ErrSlotFull = errors.New("inventory.repository: slot is full")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inventory.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inventory.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inventory.repository: failed to scan row")
)
