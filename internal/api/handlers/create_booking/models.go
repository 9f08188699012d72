package create_booking

import (
	bookingsModels "github.com/m04kA/SMC-BikeService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-BikeService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	BikeNumber  string `json:"bikeNumber"`
	Email       string `json:"email,omitempty"`
	Service     string `json:"service"`
	Date        string `json:"date"`
	TimeSlot    string `json:"timeSlot"`
	Location    string `json:"location"`
	Mechanic    string `json:"mechanic"`
	PaymentType string `json:"paymentType,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success   bool                            `json:"success"`
	Booking   *bookingsModels.BookingResponse `json:"booking"`
	EmailSent bool                            `json:"emailSent"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		FullName:    r.FullName,
		Phone:       r.Phone,
		BikeNumber:  r.BikeNumber,
		Email:       r.Email,
		Service:     r.Service,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		Location:    r.Location,
		Mechanic:    r.Mechanic,
		PaymentType: r.PaymentType,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Success:   true,
		Booking:   bookingsModels.FromDomainBooking(resp.Booking),
		EmailSent: resp.EmailSent,
	}
}
