package get_booking

import "github.com/m04kA/SMC-BikeService/internal/service/bookings/models"

// BookingResponse HTTP response model
type BookingResponse struct {
	Success bool                    `json:"success"`
	Booking *models.BookingResponse `json:"booking"`
}
