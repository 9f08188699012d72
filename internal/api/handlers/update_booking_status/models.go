package update_booking_status

import (
	bookingsModels "github.com/m04kA/SMC-BikeService/internal/service/bookings/models"
	paymentsModels "github.com/m04kA/SMC-BikeService/internal/service/payments/models"
	updateStatus "github.com/m04kA/SMC-BikeService/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status    string  `json:"status"`
	PartsUsed *string `json:"partsUsed,omitempty"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	Success bool                            `json:"success"`
	Booking *bookingsModels.BookingResponse `json:"booking"`
	Payment *paymentsModels.PaymentResponse `json:"payment,omitempty"` // только при completed
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(bookingID string) *updateStatus.Request {
	return &updateStatus.Request{
		BookingID: bookingID,
		Status:    r.Status,
		PartsUsed: r.PartsUsed,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		Success: true,
		Booking: bookingsModels.FromDomainBooking(resp.Booking),
		Payment: paymentsModels.FromDomainPayment(resp.Payment),
	}
}
