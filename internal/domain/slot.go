package domain

import (
	"strings"
	"time"
)

// SlotKey identifies one bookable unit: a mechanic at a location on a date at a time slot
type SlotKey struct {
	Date     string
	Location string
	Mechanic string
	TimeSlot string
}

// String renders the key in the storage form slot:<date>:<location>:<mechanic>:<timeSlot>
func (k SlotKey) String() string {
	return strings.Join([]string{"slot", k.Date, k.Location, k.Mechanic, k.TimeSlot}, ":")
}

// SlotReservation marks a slot as taken by a booking
type SlotReservation struct {
	BookingID  string
	ReservedAt time.Time
	Customer   string
}

// Availability is the occupancy of one mechanic at one location on one date
type Availability struct {
	BookedSlots    []string
	AvailableSlots []string
}
