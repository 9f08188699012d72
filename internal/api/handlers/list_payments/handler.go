package list_payments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
	"github.com/m04kA/SMC-BikeService/internal/service/payments"
	"github.com/m04kA/SMC-BikeService/internal/service/payments/models"
)

const (
	msgInvalidStatus = "Payment status must be pending or paid"
)

// PaymentListResponse HTTP response model
type PaymentListResponse struct {
	Success  bool                     `json:"success"`
	Payments []models.PaymentResponse `json:"payments"`
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

// Handle GET /api/v1/cashier/payments
// Query params: status (pending, paid или пусто - все платежи)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	result, err := h.service.List(r.Context(), &models.ListPaymentsRequest{Status: status})
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("GET /cashier/payments - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /cashier/payments - Failed to get payments: status=%s, error=%v", status, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /cashier/payments - Payments retrieved successfully: status=%s, count=%d",
		status, len(result.Payments))
	handlers.RespondJSON(w, http.StatusOK, &PaymentListResponse{Success: true, Payments: result.Payments})
}
