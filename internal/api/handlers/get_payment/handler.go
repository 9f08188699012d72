package get_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
	"github.com/m04kA/SMC-BikeService/internal/service/payments"
	"github.com/m04kA/SMC-BikeService/internal/service/payments/models"
)

const (
	msgInvalidPaymentID = "Invalid payment ID"
	msgNotFound         = "Payment not found"
)

// PaymentResponse HTTP response model
type PaymentResponse struct {
	Success bool                    `json:"success"`
	Payment *models.PaymentResponse `json:"payment"`
}

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/{paymentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["paymentId"]

	payment, err := h.service.GetByID(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("GET /payments/{id} - Invalid payment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPaymentID)

		case errors.Is(err, payments.ErrPaymentNotFound):
			h.logger.Warn("GET /payments/{id} - Payment not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /payments/{id} - Failed to get payment: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /payments/{id} - Payment retrieved successfully: payment_id=%s", paymentID)
	handlers.RespondJSON(w, http.StatusOK, &PaymentResponse{Success: true, Payment: payment})
}
