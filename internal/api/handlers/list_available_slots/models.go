package list_available_slots

import (
	"github.com/timisoara-dining/reservation-service/internal/domain"
	listAvailableSlots "github.com/timisoara-dining/reservation-service/internal/usecase/list_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного слота
type AvailableSlot struct {
	Date          string `json:"date"`     // "2025-06-01"
	TimeSlot      string `json:"timeSlot"` // "SLOT_10_00"
	DisplayLabel  string `json:"displayLabel"`
	SpotsLeft     int    `json:"spotsLeft"`
	TotalCapacity int    `json:"totalCapacity"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Date:          slot.Date.Format(domain.DateFormat),
			TimeSlot:      string(slot.TimeSlot),
			DisplayLabel:  slot.DisplayLabel,
			SpotsLeft:     slot.SpotsLeft,
			TotalCapacity: slot.TotalCapacity,
		}
	}

	return &AvailableSlotsResponse{Slots: slots}
}
