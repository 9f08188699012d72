package booking

import (
	"time"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// bookingRecord формат хранения бронирования
type bookingRecord struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Phone       string     `json:"phone"`
	BikeNumber  string     `json:"bikeNumber"`
	Email       string     `json:"email,omitempty"`
	Service     string     `json:"service"`
	Date        string     `json:"date"`
	TimeSlot    string     `json:"timeSlot"`
	Location    string     `json:"location"`
	Mechanic    string     `json:"mechanic"`
	PaymentType string     `json:"paymentType"`
	Status      string     `json:"status"`
	PartsUsed   string     `json:"partsUsed"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// slotRecord формат хранения резервации слота
type slotRecord struct {
	BookingID  string    `json:"bookingId"`
	ReservedAt time.Time `json:"reservedAt"`
	Customer   string    `json:"customer"`
}

func toBookingRecord(b *domain.Booking) bookingRecord {
	return bookingRecord{
		ID:          b.ID,
		FullName:    b.FullName,
		Phone:       b.Phone,
		BikeNumber:  b.BikeNumber,
		Email:       b.Email,
		Service:     b.Service,
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		Location:    b.Location,
		Mechanic:    b.Mechanic,
		PaymentType: string(b.PaymentType),
		Status:      string(b.Status),
		PartsUsed:   b.PartsUsed,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r bookingRecord) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:          r.ID,
		FullName:    r.FullName,
		Phone:       r.Phone,
		BikeNumber:  r.BikeNumber,
		Email:       r.Email,
		Service:     r.Service,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		Location:    r.Location,
		Mechanic:    r.Mechanic,
		PaymentType: domain.PaymentType(r.PaymentType),
		Status:      domain.BookingStatus(r.Status),
		PartsUsed:   r.PartsUsed,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toSlotRecord(r domain.SlotReservation) slotRecord {
	return slotRecord{
		BookingID:  r.BookingID,
		ReservedAt: r.ReservedAt,
		Customer:   r.Customer,
	}
}

func (r slotRecord) toDomain() *domain.SlotReservation {
	return &domain.SlotReservation{
		BookingID:  r.BookingID,
		ReservedAt: r.ReservedAt,
		Customer:   r.Customer,
	}
}
