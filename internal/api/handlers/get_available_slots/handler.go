package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BikeService/internal/usecase/get_available_slots"
)

const (
	msgMissingParams = "Missing required parameters: date, location, mechanic"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/availability
// Query params: date, location, mechanic (все обязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq := ToUseCaseRequest(r.URL.Query())

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/availability - Missing parameters: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /bookings/availability - Failed to check availability: date=%s, location=%s, mechanic=%s, error=%v",
				useCaseReq.Date, useCaseReq.Location, useCaseReq.Mechanic, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/availability - date=%s, mechanic=%s, booked=%d, available=%d",
		useCaseReq.Date, useCaseReq.Mechanic, len(result.BookedSlots), len(result.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
