package events

import (
	"time"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// Routing keys
const (
	RoutingBookingCreated       = "booking.created"
	RoutingBookingStatusChanged = "booking.status_changed"
	RoutingPaymentProcessed     = "payment.processed"
)

const DefaultExchange = "bike_service"

// BookingCreated публикуется после создания бронирования
type BookingCreated struct {
	BookingID  string    `json:"bookingId"`
	Customer   string    `json:"customer"`
	Phone      string    `json:"phone"`
	Service    string    `json:"service"`
	Date       string    `json:"date"`
	TimeSlot   string    `json:"timeSlot"`
	Location   string    `json:"location"`
	Mechanic   string    `json:"mechanic"`
	EmailSent  bool      `json:"emailSent"`
	OccurredAt time.Time `json:"occurredAt"`
}

// BookingStatusChanged публикуется после смены статуса бронирования
type BookingStatusChanged struct {
	BookingID  string    `json:"bookingId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Mechanic   string    `json:"mechanic"`
	PaymentID  string    `json:"paymentId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// PaymentProcessed публикуется после оплаты
type PaymentProcessed struct {
	PaymentID  string    `json:"paymentId"`
	BookingID  string    `json:"bookingId"`
	Method     string    `json:"method"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewBookingCreated(b *domain.Booking, emailSent bool) BookingCreated {
	return BookingCreated{
		BookingID:  b.ID,
		Customer:   b.FullName,
		Phone:      b.Phone,
		Service:    b.Service,
		Date:       b.Date,
		TimeSlot:   b.TimeSlot,
		Location:   b.Location,
		Mechanic:   b.Mechanic,
		EmailSent:  emailSent,
		OccurredAt: b.CreatedAt,
	}
}

func NewBookingStatusChanged(b *domain.Booking, from domain.BookingStatus, payment *domain.Payment, at time.Time) BookingStatusChanged {
	e := BookingStatusChanged{
		BookingID:  b.ID,
		From:       string(from),
		To:         string(b.Status),
		Mechanic:   b.Mechanic,
		OccurredAt: at,
	}
	if payment != nil {
		e.PaymentID = payment.ID
	}
	return e
}

func NewPaymentProcessed(p *domain.Payment, at time.Time) PaymentProcessed {
	return PaymentProcessed{
		PaymentID:  p.ID,
		BookingID:  p.BookingID,
		Method:     string(p.Method),
		OccurredAt: at,
	}
}
