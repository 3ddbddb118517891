package create_reservation

import (
	"time"

	"github.com/timisoara-dining/reservation-service/internal/domain"
	createReservation "github.com/timisoara-dining/reservation-service/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Date     string `json:"date"`     // "2025-06-01"
	TimeSlot string `json:"timeSlot"` // "SLOT_10_00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	TimeSlotLabel string `json:"timeSlotLabel"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	slot, err := domain.ParseTimeSlot(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Name:     r.Name,
		Phone:    r.Phone,
		Date:     date,
		TimeSlot: slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		Name:          resp.Name,
		Phone:         resp.Phone,
		Date:          resp.Date.Format(domain.DateFormat),
		TimeSlot:      string(resp.TimeSlot),
		TimeSlotLabel: resp.TimeSlot.DisplayLabel(),
		Status:        resp.Status,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
