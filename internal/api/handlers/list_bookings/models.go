package list_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-BikeService/internal/service/bookings/models"
)

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Success  bool                     `json:"success"`
	Bookings []models.BookingResponse `json:"bookings"`
}

// ToServiceRequest собирает запрос к сервису из query параметров
func ToServiceRequest(query url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}
	return req
}
