package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/timisoara-dining/reservation-service/internal/domain"
	"github.com/timisoara-dining/reservation-service/pkg/dbmetrics"
	"github.com/timisoara-dining/reservation-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с инвентарем слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория инвентаря
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDateAndSlot получает запись инвентаря по (дата, слот)
// Внутри транзакции строка блокируется через FOR UPDATE, чтобы проверка
// вместимости и инкремент работали с одним и тем же состоянием
func (r *Repository) GetByDateAndSlot(ctx context.Context, date time.Time, slot domain.TimeSlot) (*domain.InventorySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"date",
		"time_slot",
		"total_capacity",
		"total_reserved",
		"created_at",
		"updated_at",
	).
		From("slot_inventory").
		Where(squirrel.Eq{"date": date, "time_slot": slot})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndSlot - build select query: %v", ErrBuildQuery, err)
	}

	var inv domain.InventorySlot
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&inv.ID,
		&inv.Date,
		&inv.TimeSlot,
		&inv.TotalCapacity,
		&inv.TotalReserved,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndSlot - scan slot: %v", ErrScanRow, err)
	}

	inv.CreatedAt = createdAt.Time
	inv.UpdatedAt = updatedAt.Time

	return &inv, nil
}

// ListAvailable получает слоты с остатком мест в диапазоне дат [from, to]
// Сортировка: дата по возрастанию, затем фиксированный порядок слотов дня
// (лексикографический порядок значений SLOT_HH_00 совпадает с порядком времени)
func (r *Repository) ListAvailable(ctx context.Context, from, to time.Time) ([]*domain.InventorySlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"date",
		"time_slot",
		"total_capacity",
		"total_reserved",
		"created_at",
		"updated_at",
	).
		From("slot_inventory").
		Where(squirrel.GtOrEq{"date": from}).
		Where(squirrel.LtOrEq{"date": to}).
		Where(squirrel.Expr("total_reserved < total_capacity")).
		OrderBy("date ASC", "time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ReserveSpot атомарно занимает одно место в слоте
// Инкремент выполняется одним условным UPDATE: счетчик увеличивается только
// если остались свободные места, поэтому конкурентные брони не могут
// превысить вместимость. Если ни одна строка не изменена - слот заполнен.
func (r *Repository) ReserveSpot(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_inventory").
		Set("total_reserved", squirrel.Expr("total_reserved + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("total_reserved < total_capacity")).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReserveSpot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveSpot - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveSpot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotFull
	}

	return nil
}

// CreateIfAbsent создает запись инвентаря, если её ещё нет
// Используется процессом сидирования; существующие записи не изменяются,
// вместимость фиксируется при первом создании
func (r *Repository) CreateIfAbsent(ctx context.Context, date time.Time, slot domain.TimeSlot, capacity int) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_inventory").
		Columns("date", "time_slot", "total_capacity", "total_reserved").
		Values(date, slot, capacity, 0).
		Suffix("ON CONFLICT (date, time_slot) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: CreateIfAbsent - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// scanSlots сканирует результаты запроса в слайс записей инвентаря
func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.InventorySlot, error) {
	slots := make([]*domain.InventorySlot, 0)

	for rows.Next() {
		var inv domain.InventorySlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&inv.ID,
			&inv.Date,
			&inv.TimeSlot,
			&inv.TotalCapacity,
			&inv.TotalReserved,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		inv.CreatedAt = createdAt.Time
		inv.UpdatedAt = updatedAt.Time

		slots = append(slots, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
