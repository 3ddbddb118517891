package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/timisoara-dining/reservation-service/internal/domain"
	inventoryRepo "github.com/timisoara-dining/reservation-service/internal/infra/storage/inventory"
	reservationRepo "github.com/timisoara-dining/reservation-service/internal/infra/storage/reservation"
)

// UseCase use case для создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	inventoryRepo   InventoryRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	inventoryRepo InventoryRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		inventoryRepo:   inventoryRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони
// Все операции с БД идут в одной сериализуемой транзакции: проверка
// дубликата, чтение слота и условный инкремент счетчика видят одно и то же
// состояние, поэтому два конкурентных запроса не могут превысить
// вместимость слота или создать гостю вторую активную бронь
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: phone=%s, date=%s, slot=%s",
		req.Phone, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Проверяем, нет ли у гостя активной брони на этот слот
		existing, err := uc.reservationRepo.FindActiveByGuest(txCtx, req.Phone, req.Date, req.TimeSlot)
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("CreateReservation: failed to check duplicate: %v", err)
			return fmt.Errorf("%w: failed to check duplicate: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Warn("CreateReservation: duplicate booking, existing id=%s status=%s",
				existing.ID, existing.Status)
			return ErrDuplicateBooking
		}

		// 3. Получаем запись инвентаря (FOR UPDATE внутри транзакции)
		inv, err := uc.inventoryRepo.GetByDateAndSlot(txCtx, req.Date, req.TimeSlot)
		if err != nil {
			if errors.Is(err, inventoryRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateReservation: slot not found, date=%s slot=%s",
					req.Date.Format(domain.DateFormat), req.TimeSlot)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateReservation: failed to get inventory: %v", err)
			return fmt.Errorf("%w: failed to get inventory: %v", ErrInternal, err)
		}

		// 4. Быстрая проверка вместимости по прочитанному состоянию
		// (авторитетная проверка - условный инкремент на шаге 6)
		if inv.IsFull() {
			uc.logger.Warn("CreateReservation: slot full, %d/%d reserved",
				inv.TotalReserved, inv.TotalCapacity)
			return ErrSlotFull
		}

		// 5. Создаем бронь в статусе PENDING
		res := &domain.Reservation{
			Name:        req.Name,
			Phone:       req.Phone,
			Date:        req.Date,
			TimeSlot:    req.TimeSlot,
			InventoryID: inv.ID,
			Status:      domain.StatusPending,
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 6. Атомарно занимаем место: инкремент проходит только при наличии
		// свободных мест; отказ откатывает и созданную бронь
		if err := uc.inventoryRepo.ReserveSpot(txCtx, inv.ID); err != nil {
			if errors.Is(err, inventoryRepo.ErrSlotFull) {
				uc.logger.Warn("CreateReservation: slot filled concurrently, inventory id=%d", inv.ID)
				return ErrSlotFull
			}
			uc.logger.Error("CreateReservation: failed to reserve spot: %v", err)
			return fmt.Errorf("%w: failed to reserve spot: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)

	return &Response{
		ID:        result.ID,
		Name:      result.Name,
		Phone:     result.Phone,
		Date:      result.Date,
		TimeSlot:  result.TimeSlot,
		Status:    string(result.Status),
		CreatedAt: result.CreatedAt,
	}, nil
}
