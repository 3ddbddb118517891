package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/timisoara-dining/reservation-service/internal/domain"
	"github.com/timisoara-dining/reservation-service/pkg/dbmetrics"
	"github.com/timisoara-dining/reservation-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь
// ID генерируется на стороне приложения (uuid), created_at/updated_at
// заполняются БД и возвращаются через RETURNING
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == "" {
		res.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"name",
			"phone",
			"date",
			"time_slot",
			"inventory_id",
			"status",
		).
		Values(
			res.ID,
			res.Name,
			res.Phone,
			res.Date,
			res.TimeSlot,
			res.InventoryID,
			res.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"phone",
		"date",
		"time_slot",
		"inventory_id",
		"status",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// FindActiveByGuest ищет активную бронь (PENDING или CONFIRMED) гостя
// на конкретный (телефон, дата, слот)
// Внутри транзакции строка блокируется через FOR UPDATE
func (r *Repository) FindActiveByGuest(ctx context.Context, phone string, date time.Time, slot domain.TimeSlot) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"phone",
		"date",
		"time_slot",
		"inventory_id",
		"status",
		"created_at",
		"updated_at",
	).
		From("reservations").
		Where(squirrel.Eq{
			"phone":     phone,
			"date":      date,
			"time_slot": slot,
			"status":    activeStatuses,
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByGuest - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByGuest - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// ListWithInventory получает все брони вместе с данными инвентаря
// Сортировка для таблицы персонала: дата по убыванию, слот дня по
// возрастанию, затем id по возрастанию
func (r *Repository) ListWithInventory(ctx context.Context) ([]*domain.ReservationWithInventory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"r.id",
		"r.name",
		"r.phone",
		"r.date",
		"r.time_slot",
		"r.inventory_id",
		"r.status",
		"r.created_at",
		"r.updated_at",
		"i.total_capacity",
		"i.total_reserved",
	).
		From("reservations r").
		Join("slot_inventory i ON i.id = r.inventory_id").
		OrderBy("r.date DESC", "r.time_slot ASC", "r.id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListWithInventory - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithInventory - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.ReservationWithInventory, 0)

	for rows.Next() {
		var res domain.ReservationWithInventory
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Phone,
			&res.Date,
			&res.TimeSlot,
			&res.InventoryID,
			&res.Status,
			&createdAt,
			&updatedAt,
			&res.TotalCapacity,
			&res.TotalReserved,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListWithInventory - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListWithInventory - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// UpdateStatusFrom условно обновляет статус брони
// Статус меняется только если в хранилище он всё ещё равен expected
// (оптимистическая блокировка). Если ни одна строка не изменена,
// возвращается ErrStatusNotUpdated - вызывающий слой различает
// "бронь не найдена" и "статус устарел" повторным чтением.
func (r *Repository) UpdateStatusFrom(ctx context.Context, id string, newStatus, expected domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", newStatus).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": expected}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusFrom - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusNotUpdated
	}

	return nil
}

// CountByStatus подсчитывает брони по статусам для дашборда персонала
func (r *Repository) CountByStatus(ctx context.Context) (*domain.ReservationStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("reservations").
		GroupBy("status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	stats := &domain.ReservationStats{}

	for rows.Next() {
		var status domain.ReservationStatus
		var count int

		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}

		stats.Total += count
		switch status {
		case domain.StatusConfirmed:
			stats.Confirmed = count
		case domain.StatusPending:
			stats.Pending = count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - rows error: %v", ErrScanRow, err)
	}

	return stats, nil
}

// scanReservation сканирует одну строку в модель брони
func (r *Repository) scanReservation(row *sql.Row) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Phone,
		&res.Date,
		&res.TimeSlot,
		&res.InventoryID,
		&res.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
