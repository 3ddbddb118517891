package domain

import (
	"fmt"
	"time"
)

// TimeSlot is one of the seven fixed daily seating slots.
type TimeSlot string

const (
	Slot0800 TimeSlot = "SLOT_08_00"
	Slot1000 TimeSlot = "SLOT_10_00"
	Slot1200 TimeSlot = "SLOT_12_00"
	Slot1400 TimeSlot = "SLOT_14_00"
	Slot1600 TimeSlot = "SLOT_16_00"
	Slot1800 TimeSlot = "SLOT_18_00"
	Slot2000 TimeSlot = "SLOT_20_00"
)

// AllTimeSlots lists every slot in slot-of-day order.
var AllTimeSlots = []TimeSlot{
	Slot0800,
	Slot1000,
	Slot1200,
	Slot1400,
	Slot1600,
	Slot1800,
	Slot2000,
}

// slotOrder fixed slot-of-day ordering, used everywhere slots are sorted.
var slotOrder = map[TimeSlot]int{
	Slot0800: 0,
	Slot1000: 1,
	Slot1200: 2,
	Slot1400: 3,
	Slot1600: 4,
	Slot1800: 5,
	Slot2000: 6,
}

// slotDisplay canonical display labels shown to guests.
var slotDisplay = map[TimeSlot]string{
	Slot0800: "8:00 AM",
	Slot1000: "10:00 AM",
	Slot1200: "12:00 PM",
	Slot1400: "2:00 PM",
	Slot1600: "4:00 PM",
	Slot1800: "6:00 PM",
	Slot2000: "8:00 PM",
}

// ParseTimeSlot validates and converts a raw string into a TimeSlot.
func ParseTimeSlot(raw string) (TimeSlot, error) {
	slot := TimeSlot(raw)
	if !slot.Valid() {
		return "", fmt.Errorf("unknown time slot %q", raw)
	}
	return slot, nil
}

// Valid reports whether the slot is one of the seven known values.
func (s TimeSlot) Valid() bool {
	_, ok := slotOrder[s]
	return ok
}

// SortOrder returns the fixed slot-of-day position (0 for 08:00 .. 6 for 20:00).
func (s TimeSlot) SortOrder() int {
	return slotOrder[s]
}

// DisplayLabel returns the canonical label, e.g. "2:00 PM" for SLOT_14_00.
func (s TimeSlot) DisplayLabel() string {
	return slotDisplay[s]
}

// InventorySlot is the capacity-tracking record for one (date, time slot) unit.
// TotalCapacity is fixed at seed time; TotalReserved is mutated only by the
// reservation creation flow, via an atomic conditional increment.
type InventorySlot struct {
	ID            int64
	Date          time.Time
	TimeSlot      TimeSlot
	TotalCapacity int
	TotalReserved int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// SpotsLeft returns the remaining bookable capacity.
func (s *InventorySlot) SpotsLeft() int {
	left := s.TotalCapacity - s.TotalReserved
	if left < 0 {
		return 0
	}
	return left
}

// IsFull reports whether the slot has no remaining capacity.
func (s *InventorySlot) IsFull() bool {
	return s.TotalReserved >= s.TotalCapacity
}
