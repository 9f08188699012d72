package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusInProgress BookingStatus = "in-progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// PaymentType tells whether the job is billed
type PaymentType string

const (
	PaymentTypePaid PaymentType = "paid"
	PaymentTypeFree PaymentType = "free"
)

// bookingTransitions lists the statuses reachable from each status.
// completed and cancelled are terminal.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// IsValid returns true for the four known statuses
func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransitionTo reports whether a booking in status s may move to target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are allowed
func (s BookingStatus) IsTerminal() bool {
	return s.IsValid() && len(bookingTransitions[s]) == 0
}

// IsValid returns true for paid and free
func (p PaymentType) IsValid() bool {
	return p == PaymentTypePaid || p == PaymentTypeFree
}

// Booking represents a service appointment for one bike
type Booking struct {
	ID          string
	FullName    string
	Phone       string
	BikeNumber  string
	Email       string // optional
	Service     string
	Date        string // calendar day as entered by the customer, compared verbatim
	TimeSlot    string
	Location    string
	Mechanic    string
	PaymentType PaymentType
	Status      BookingStatus
	PartsUsed   string

	CreatedAt time.Time
	UpdatedAt *time.Time
}

// SlotKey returns the reservation key the booking holds
func (b *Booking) SlotKey() SlotKey {
	return SlotKey{
		Date:     b.Date,
		Location: b.Location,
		Mechanic: b.Mechanic,
		TimeSlot: b.TimeSlot,
	}
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Matches returns true if the booking is for the given date, location and mechanic
func (b *Booking) Matches(date, location, mechanic string) bool {
	return b.Date == date && b.Location == location && b.Mechanic == mechanic
}
