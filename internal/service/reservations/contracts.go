package reservations

import (
	"context"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListWithInventory(ctx context.Context) ([]*domain.ReservationWithInventory, error)
	UpdateStatusFrom(ctx context.Context, id string, newStatus, expected domain.ReservationStatus) error
	CountByStatus(ctx context.Context) (*domain.ReservationStats, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
