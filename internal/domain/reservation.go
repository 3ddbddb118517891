package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// ValidTransitions is the status state machine:
// PENDING -> CONFIRMED or CANCELLED, CONFIRMED -> CANCELLED,
// CANCELLED is terminal.
var ValidTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// ActiveStatuses are the statuses that count toward the duplicate-booking
// check and toward consumed capacity.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}

// Valid reports whether the status is one of the known values.
func (s ReservationStatus) Valid() bool {
	_, ok := ValidTransitions[s]
	return ok
}

// CanTransitionTo reports whether the state machine allows moving to next.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range ValidTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are permitted.
func (s ReservationStatus) IsTerminal() bool {
	return len(ValidTransitions[s]) == 0
}

// Reservation represents a guest's booking of one inventory slot
type Reservation struct {
	ID          string
	Name        string
	Phone       string
	Date        time.Time
	TimeSlot    TimeSlot
	InventoryID int64
	Status      ReservationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the reservation still consumes capacity
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// ReservationWithInventory is a reservation joined with its inventory slot,
// as shown in the staff reservations table.
type ReservationWithInventory struct {
	Reservation
	TotalCapacity int
	TotalReserved int
}

// ReservationStats aggregate counts for the staff dashboard
type ReservationStats struct {
	Total     int
	Confirmed int
	Pending   int
}
