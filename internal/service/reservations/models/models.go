package models

import (
	"errors"
	"time"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса брони
// CurrentStatus - статус, в котором бронь находится по мнению вызывающей
// стороны; переход валидируется по нему, а запись в хранилище условная
type UpdateStatusRequest struct {
	Status        string `json:"status"`
	CurrentStatus string `json:"currentStatus"`
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`     // "2025-06-01"
	TimeSlot      string `json:"timeSlot"` // "SLOT_10_00"
	TimeSlotLabel string `json:"timeSlotLabel"`
	InventoryID   int64  `json:"inventoryId"`
	Status        string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationWithInventoryResponse бронь вместе с данными инвентаря
// для таблицы персонала
type ReservationWithInventoryResponse struct {
	ReservationResponse
	TotalCapacity int `json:"totalCapacity"`
	TotalReserved int `json:"totalReserved"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationWithInventoryResponse `json:"reservations"`
}

// StatsResponse агрегированные счетчики для дашборда персонала
type StatsResponse struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:            r.ID,
		Name:          r.Name,
		Phone:         r.Phone,
		Date:          r.Date.Format(domain.DateFormat),
		TimeSlot:      string(r.TimeSlot),
		TimeSlotLabel: r.TimeSlot.DisplayLabel(),
		InventoryID:   r.InventoryID,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список броней с инвентарем в DTO
func FromDomainReservationList(reservations []*domain.ReservationWithInventory) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationWithInventoryResponse, len(reservations)),
	}

	for i, r := range reservations {
		resp.Reservations[i] = ReservationWithInventoryResponse{
			ReservationResponse: *FromDomainReservation(&r.Reservation),
			TotalCapacity:       r.TotalCapacity,
			TotalReserved:       r.TotalReserved,
		}
	}

	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s *domain.ReservationStats) *StatsResponse {
	return &StatsResponse{
		Total:     s.Total,
		Confirmed: s.Confirmed,
		Pending:   s.Pending,
	}
}

// ToDomainStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
