package update_reservation_status

import "github.com/timisoara-dining/reservation-service/internal/service/reservations/models"

// UpdateStatusRequest HTTP request model
// currentStatus - статус, который вызывающая сторона видела последним;
// смена применяется только если он всё ещё актуален
type UpdateStatusRequest struct {
	Status        string `json:"status"`
	CurrentStatus string `json:"currentStatus"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		Status:        r.Status,
		CurrentStatus: r.CurrentStatus,
	}
}
