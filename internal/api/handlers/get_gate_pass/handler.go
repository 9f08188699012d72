package get_gate_pass

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
	"github.com/m04kA/SMC-BikeService/internal/service/documents"
)

const (
	msgInvalidPaymentID = "Invalid payment ID"
	msgNotFound         = "Payment not found"
	msgNotPaid          = "Gate pass is available only for paid payments"
)

type Handler struct {
	service DocumentService
	logger  Logger
}

func NewHandler(service DocumentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/{paymentId}/gate-pass
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["paymentId"]

	pass, pdf, err := h.service.GatePass(r.Context(), paymentID)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrInvalidInput):
			h.logger.Warn("GET /payments/{id}/gate-pass - Invalid payment ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPaymentID)

		case errors.Is(err, documents.ErrPaymentNotFound):
			h.logger.Warn("GET /payments/{id}/gate-pass - Payment not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, documents.ErrPaymentNotPaid):
			h.logger.Warn("GET /payments/{id}/gate-pass - Payment not paid: payment_id=%s", paymentID)
			handlers.RespondConflict(w, handlers.CodePaymentNotPaid, msgNotPaid)

		default:
			h.logger.Error("GET /payments/{id}/gate-pass - Failed to render gate pass: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="gate-pass-%s.pdf"`, pass.BookingID))
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		h.logger.Warn("GET /payments/{id}/gate-pass - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /payments/{id}/gate-pass - Gate pass issued: payment_id=%s, booking_id=%s", paymentID, pass.BookingID)
}
