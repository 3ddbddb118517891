package list_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

// UseCase use case для получения доступных слотов
type UseCase struct {
	inventoryRepo InventoryRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(inventoryRepo InventoryRepository, logger Logger) *UseCase {
	return &UseCase{
		inventoryRepo: inventoryRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute возвращает слоты с остатком мест в окне [сегодня, сегодня+N дней]
// Полные слоты (total_reserved >= total_capacity) отфильтровываются в
// репозитории и никогда не попадают в ответ
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.WithinDays < 0 {
		uc.logger.Warn("ListAvailableSlots: negative window %d", req.WithinDays)
		return nil, fmt.Errorf("%w: withinDays must not be negative", ErrInvalidInput)
	}

	withinDays := req.WithinDays
	if withinDays == 0 {
		withinDays = domain.DefaultAvailabilityWindowDays
	}

	now := uc.timeProvider.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, withinDays)

	slots, err := uc.inventoryRepo.ListAvailable(ctx, from, to)
	if err != nil {
		uc.logger.Error("ListAvailableSlots: failed to list inventory: %v", err)
		return nil, fmt.Errorf("%w: failed to list inventory: %v", ErrInternal, err)
	}

	result := make([]Slot, len(slots))
	for i, inv := range slots {
		result[i] = Slot{
			Date:          inv.Date,
			TimeSlot:      inv.TimeSlot,
			DisplayLabel:  inv.TimeSlot.DisplayLabel(),
			SpotsLeft:     inv.SpotsLeft(),
			TotalCapacity: inv.TotalCapacity,
		}
	}

	uc.logger.Info("ListAvailableSlots: %d slots available within %d days", len(result), withinDays)

	return &Response{Slots: result}, nil
}
