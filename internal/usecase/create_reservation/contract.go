package create_reservation

import (
	"context"
	"time"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	FindActiveByGuest(ctx context.Context, phone string, date time.Time, slot domain.TimeSlot) (*domain.Reservation, error)
}

// InventoryRepository интерфейс репозитория инвентаря слотов
type InventoryRepository interface {
	GetByDateAndSlot(ctx context.Context, date time.Time, slot domain.TimeSlot) (*domain.InventorySlot, error)
	ReserveSpot(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
