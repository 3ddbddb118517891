package reservations

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timisoara-dining/reservation-service/internal/domain"
	reservationRepo "github.com/timisoara-dining/reservation-service/internal/infra/storage/reservation"
	"github.com/timisoara-dining/reservation-service/internal/service/reservations/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	byID  map[string]*domain.Reservation
	list  []*domain.ReservationWithInventory
	stats *domain.ReservationStats

	getErr    error
	listErr   error
	statsErr  error
	updateErr error

	updatedID       string
	updatedStatus   domain.ReservationStatus
	updatedExpected domain.ReservationStatus
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	res, ok := f.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return res, nil
}

func (f *fakeReservationRepo) ListWithInventory(_ context.Context) ([]*domain.ReservationWithInventory, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeReservationRepo) UpdateStatusFrom(_ context.Context, id string, newStatus, expected domain.ReservationStatus) error {
	f.updatedID = id
	f.updatedStatus = newStatus
	f.updatedExpected = expected

	if f.updateErr != nil {
		return f.updateErr
	}

	res, ok := f.byID[id]
	if !ok || res.Status != expected {
		return reservationRepo.ErrStatusNotUpdated
	}
	res.Status = newStatus
	return nil
}

func (f *fakeReservationRepo) CountByStatus(_ context.Context) (*domain.ReservationStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

func testReservation(id string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:          id,
		Name:        "Ana Popescu",
		Phone:       "+40712345678",
		Date:        time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:    domain.Slot1800,
		InventoryID: 7,
		Status:      status,
	}
}

func TestService_GetByID(t *testing.T) {
	repo := &fakeReservationRepo{
		byID: map[string]*domain.Reservation{
			"res-1": testReservation("res-1", domain.StatusPending),
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), "res-1")
	require.NoError(t, err)

	assert.Equal(t, "res-1", resp.ID)
	assert.Equal(t, "2025-06-15", resp.Date)
	assert.Equal(t, "SLOT_18_00", resp.TimeSlot)
	assert.Equal(t, "6:00 PM", resp.TimeSlotLabel)
	assert.Equal(t, int64(7), resp.InventoryID)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeReservationRepo{byID: map[string]*domain.Reservation{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_List(t *testing.T) {
	repo := &fakeReservationRepo{
		list: []*domain.ReservationWithInventory{
			{
				Reservation:   *testReservation("res-2", domain.StatusConfirmed),
				TotalCapacity: 10,
				TotalReserved: 6,
			},
			{
				Reservation:   *testReservation("res-1", domain.StatusPending),
				TotalCapacity: 10,
				TotalReserved: 6,
			},
		},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 2)

	// Порядок репозитория сохраняется как есть
	assert.Equal(t, "res-2", resp.Reservations[0].ID)
	assert.Equal(t, 10, resp.Reservations[0].TotalCapacity)
	assert.Equal(t, 6, resp.Reservations[0].TotalReserved)
	assert.Equal(t, "res-1", resp.Reservations[1].ID)
}

func TestService_Stats(t *testing.T) {
	repo := &fakeReservationRepo{
		stats: &domain.ReservationStats{Total: 12, Confirmed: 7, Pending: 3},
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 7, resp.Confirmed)
	assert.Equal(t, 3, resp.Pending)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name          string
		stored        *domain.Reservation
		status        string
		currentStatus string
		wantErr       error
		wantStored    domain.ReservationStatus
	}{
		{
			name:          "confirm pending reservation",
			stored:        testReservation("res-1", domain.StatusPending),
			status:        "CONFIRMED",
			currentStatus: "PENDING",
			wantStored:    domain.StatusConfirmed,
		},
		{
			name:          "cancel pending reservation",
			stored:        testReservation("res-1", domain.StatusPending),
			status:        "CANCELLED",
			currentStatus: "PENDING",
			wantStored:    domain.StatusCancelled,
		},
		{
			name:          "cancel confirmed reservation",
			stored:        testReservation("res-1", domain.StatusConfirmed),
			status:        "CANCELLED",
			currentStatus: "CONFIRMED",
			wantStored:    domain.StatusCancelled,
		},
		{
			name:          "cancelled is terminal",
			stored:        testReservation("res-1", domain.StatusCancelled),
			status:        "CONFIRMED",
			currentStatus: "CANCELLED",
			wantErr:       ErrInvalidTransition,
			wantStored:    domain.StatusCancelled,
		},
		{
			name:          "confirmed cannot go back to pending",
			stored:        testReservation("res-1", domain.StatusConfirmed),
			status:        "PENDING",
			currentStatus: "CONFIRMED",
			wantErr:       ErrInvalidTransition,
			wantStored:    domain.StatusConfirmed,
		},
		{
			name:          "unknown target status",
			stored:        testReservation("res-1", domain.StatusPending),
			status:        "COMPLETED",
			currentStatus: "PENDING",
			wantErr:       ErrInvalidInput,
			wantStored:    domain.StatusPending,
		},
		{
			name:          "unknown current status",
			stored:        testReservation("res-1", domain.StatusPending),
			status:        "CONFIRMED",
			currentStatus: "unknown",
			wantErr:       ErrInvalidInput,
			wantStored:    domain.StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{
				byID: map[string]*domain.Reservation{"res-1": tt.stored},
			}
			svc := NewService(repo, nopLogger{})

			err := svc.UpdateStatus(context.Background(), "res-1", &models.UpdateStatusRequest{
				Status:        tt.status,
				CurrentStatus: tt.currentStatus,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantStored, tt.stored.Status)
		})
	}
}

func TestService_UpdateStatus_StaleStatusConflict(t *testing.T) {
	// Вызывающая сторона считает бронь PENDING, но другой сотрудник уже
	// подтвердил её - условная запись не находит строку в ожидаемом статусе
	repo := &fakeReservationRepo{
		byID: map[string]*domain.Reservation{
			"res-1": testReservation("res-1", domain.StatusConfirmed),
		},
	}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), "res-1", &models.UpdateStatusRequest{
		Status:        "CONFIRMED",
		CurrentStatus: "PENDING",
	})
	assert.ErrorIs(t, err, ErrConflict)

	// Чужой переход не перезаписан
	assert.Equal(t, domain.StatusConfirmed, repo.byID["res-1"].Status)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeReservationRepo{byID: map[string]*domain.Reservation{}}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), "missing", &models.UpdateStatusRequest{
		Status:        "CONFIRMED",
		CurrentStatus: "PENDING",
	})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_UpdateStatus_RepositoryError(t *testing.T) {
	repo := &fakeReservationRepo{
		byID: map[string]*domain.Reservation{
			"res-1": testReservation("res-1", domain.StatusPending),
		},
		updateErr: fmt.Errorf("connection refused"),
	}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), "res-1", &models.UpdateStatusRequest{
		Status:        "CONFIRMED",
		CurrentStatus: "PENDING",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
