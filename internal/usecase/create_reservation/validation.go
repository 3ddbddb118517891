package create_reservation

import (
	"fmt"
	"strings"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Телефон валидируется на уровне представления (libphonenumber на форме),
// здесь проверяется только наличие и разумная длина
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.Name)
	if len(name) < domain.MinNameLength {
		return fmt.Errorf("%w: name must be at least %d characters long", ErrInvalidInput, domain.MinNameLength)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be less than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.TimeSlot.Valid() {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, string(req.TimeSlot))
	}

	return nil
}
