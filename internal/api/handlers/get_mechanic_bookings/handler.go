package get_mechanic_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
	"github.com/m04kA/SMC-BikeService/internal/service/bookings"
	"github.com/m04kA/SMC-BikeService/internal/service/bookings/models"
)

const (
	msgInvalidMechanic = "Mechanic name is required"
)

// MechanicBookingsResponse HTTP response model
type MechanicBookingsResponse struct {
	Success  bool                     `json:"success"`
	Bookings []models.BookingResponse `json:"bookings"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/mechanics/{name}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// mux уже декодировал %20 в пробел
	mechanic := mux.Vars(r)["name"]

	result, err := h.service.ListByMechanic(r.Context(), mechanic)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /mechanics/{name}/bookings - Invalid mechanic: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMechanic)

		default:
			h.logger.Error("GET /mechanics/{name}/bookings - Failed to get bookings: mechanic=%s, error=%v",
				mechanic, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /mechanics/{name}/bookings - Bookings retrieved successfully: mechanic=%s, count=%d",
		mechanic, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, &MechanicBookingsResponse{Success: true, Bookings: result.Bookings})
}
