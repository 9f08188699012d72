package get_available_slots

import (
	"net/url"

	getAvailableSlots "github.com/m04kA/SMC-BikeService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Success        bool     `json:"success"`
	BookedSlots    []string `json:"bookedSlots"`
	AvailableSlots []string `json:"availableSlots"`
}

// ToUseCaseRequest собирает запрос из query параметров
func ToUseCaseRequest(query url.Values) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		Date:     query.Get("date"),
		Location: query.Get("location"),
		Mechanic: query.Get("mechanic"),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	booked := resp.BookedSlots
	if booked == nil {
		booked = []string{}
	}
	available := resp.AvailableSlots
	if available == nil {
		available = []string{}
	}
	return &AvailabilityResponse{
		Success:        true,
		BookedSlots:    booked,
		AvailableSlots: available,
	}
}
