package models

import (
	"time"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// ListPaymentsRequest запрос на получение списка платежей
type ListPaymentsRequest struct {
	Status string `json:"status,omitempty"` // pending, paid или пусто
}

// PaymentResponse ответ с данными платежа
type PaymentResponse struct {
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

// PaymentListResponse ответ со списком платежей
type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// FromDomainPayment конвертирует domain.Payment в PaymentResponse
func FromDomainPayment(p *domain.Payment) *PaymentResponse {
	if p == nil {
		return nil
	}
	return &PaymentResponse{
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

// FromDomainPaymentList конвертирует список domain.Payment в PaymentListResponse
func FromDomainPaymentList(payments []*domain.Payment) *PaymentListResponse {
	resp := &PaymentListResponse{
		Payments: make([]PaymentResponse, 0, len(payments)),
	}
	for _, p := range payments {
		resp.Payments = append(resp.Payments, *FromDomainPayment(p))
	}
	return resp
}
