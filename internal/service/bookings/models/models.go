package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// DomainStatus конвертирует фильтр статуса в domain тип
func (r *ListBookingsRequest) DomainStatus() (*domain.BookingStatus, error) {
	if r == nil || r.Status == nil || strings.TrimSpace(*r.Status) == "" {
		return nil, nil
	}
	status, err := ToDomainBookingStatus(*r.Status)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
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

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
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

// FromDomainBookingList конвертирует список domain.Booking в BookingListResponse
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s, nil
}
