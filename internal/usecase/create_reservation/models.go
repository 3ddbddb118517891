package create_reservation

import (
	"time"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

// Request модель запроса на создание брони
type Request struct {
	Name     string          // Имя гостя
	Phone    string          // Телефон гостя (валидируется на уровне представления)
	Date     time.Time       // Дата брони (без времени)
	TimeSlot domain.TimeSlot // Слот дня (например, SLOT_10_00)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID        string          // ID созданной брони
	Name      string          // Имя гостя
	Phone     string          // Телефон гостя
	Date      time.Time       // Дата брони
	TimeSlot  domain.TimeSlot // Слот дня
	Status    string          // Статус брони (всегда PENDING при создании)
	CreatedAt time.Time       // Время создания
}
