package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-BikeService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Missing required fields"
	msgInvalidTimeSlot    = "Invalid time slot"
	msgInvalidEmail       = "Invalid email address"
	msgInvalidPaymentType = "Payment type must be paid or free"
	msgFieldTooLong       = "One of the fields is too long"
	msgInvalidSeparator   = "Date, location and mechanic must not contain ':'"
	msgInvalidInput       = "Invalid booking data"
	msgSlotAlreadyBooked  = "This time slot is no longer available. Please select another time."
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: date=%s, location=%s, mechanic=%s, slot=%s",
				req.Date, req.Location, req.Mechanic, req.TimeSlot)
			handlers.RespondConflict(w, handlers.CodeSlotAlreadyBooked, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, validationMessage(err))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: phone=%s, error=%v", req.Phone, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, email_sent=%t",
		result.Booking.ID, result.EmailSent)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, createBooking.ErrMissingFields):
		return msgMissingFields
	case errors.Is(err, createBooking.ErrInvalidTimeSlot):
		return msgInvalidTimeSlot
	case errors.Is(err, createBooking.ErrInvalidEmail):
		return msgInvalidEmail
	case errors.Is(err, createBooking.ErrInvalidPaymentType):
		return msgInvalidPaymentType
	case errors.Is(err, createBooking.ErrInvalidSeparator):
		return msgInvalidSeparator
	case errors.Is(err, createBooking.ErrFieldTooLong):
		return msgFieldTooLong
	default:
		return msgInvalidInput
	}
}
