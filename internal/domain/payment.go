package domain

import "time"

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// PaymentMethod is how the customer settled the bill
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
)

// IsValid returns true for the supported payment methods
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI:
		return true
	}
	return false
}

// Payment is the bill derived from a completed booking
type Payment struct {
	ID        string
	BookingID string

	// Denormalized from the booking at completion time
	CustomerName string
	BikeNumber   string
	Service      string
	PartsUsed    string

	Status    PaymentStatus
	Method    PaymentMethod // empty until paid
	CreatedAt time.Time
	PaidAt    *time.Time
}

// IsPaid returns true once the payment has been processed
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentStatusPaid
}

// NewPaymentForBooking builds the pending payment for a completed booking
func NewPaymentForBooking(id string, b *Booking, now time.Time) *Payment {
	return &Payment{
		ID:           id,
		BookingID:    b.ID,
		CustomerName: b.FullName,
		BikeNumber:   b.BikeNumber,
		Service:      b.Service,
		PartsUsed:    b.PartsUsed,
		Status:       PaymentStatusPending,
		CreatedAt:    now,
	}
}

// GatePass authorizes a serviced bike to leave the premises
type GatePass struct {
	BookingID     string
	PaymentID     string
	CustomerName  string
	BikeNumber    string
	Service       string
	PartsUsed     string
	PaymentMethod PaymentMethod
	ExitTime      time.Time
}
