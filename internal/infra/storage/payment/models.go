package payment

import (
	"time"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// paymentRecord формат хранения платежа
type paymentRecord struct {
	ID            string     `json:"id"`
	BookingID     string     `json:"bookingId"`
	CustomerName  string     `json:"customerName"`
	BikeNumber    string     `json:"bikeNumber"`
	Service       string     `json:"service"`
	PartsUsed     string     `json:"partsUsed"`
	PaymentStatus string     `json:"paymentStatus"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
}

func toPaymentRecord(p *domain.Payment) paymentRecord {
	return paymentRecord{
		ID:            p.ID,
		BookingID:     p.BookingID,
		CustomerName:  p.CustomerName,
		BikeNumber:    p.BikeNumber,
		Service:       p.Service,
		PartsUsed:     p.PartsUsed,
		PaymentStatus: string(p.Status),
		PaymentMethod: string(p.Method),
		CreatedAt:     p.CreatedAt,
		PaidAt:        p.PaidAt,
	}
}

func (r paymentRecord) toDomain() *domain.Payment {
	return &domain.Payment{
		ID:           r.ID,
		BookingID:    r.BookingID,
		CustomerName: r.CustomerName,
		BikeNumber:   r.BikeNumber,
		Service:      r.Service,
		PartsUsed:    r.PartsUsed,
		Status:       domain.PaymentStatus(r.PaymentStatus),
		Method:       domain.PaymentMethod(r.PaymentMethod),
		CreatedAt:    r.CreatedAt,
		PaidAt:       r.PaidAt,
	}
}
