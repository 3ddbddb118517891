package list_available_slots

import (
	"context"
	"time"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

// InventoryRepository интерфейс репозитория инвентаря слотов
type InventoryRepository interface {
	// ListAvailable получает слоты с остатком мест в диапазоне дат,
	// отсортированные по дате и порядку слотов дня
	ListAvailable(ctx context.Context, from, to time.Time) ([]*domain.InventorySlot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
