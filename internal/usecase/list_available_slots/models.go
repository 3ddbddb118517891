package list_available_slots

import (
	"time"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	WithinDays int // Окно в днях от сегодняшней даты; 0 = дефолтные 60 дней
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Slots []Slot // Доступные слоты, дата по возрастанию, затем порядок слотов дня
}

// Slot модель доступного слота
type Slot struct {
	Date          time.Time       // Дата слота
	TimeSlot      domain.TimeSlot // Слот дня (например, SLOT_10_00)
	DisplayLabel  string          // Каноническая подпись для UI (например, "10:00 AM")
	SpotsLeft     int             // Количество свободных мест
	TotalCapacity int             // Общая вместимость слота
}
