package process_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BikeService/internal/api/handlers"
	processPayment "github.com/m04kA/SMC-BikeService/internal/usecase/process_payment"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidMethod      = "Payment method must be cash, card or upi"
	msgNotFound           = "Payment not found"
	msgAlreadyPaid        = "Payment has already been processed"
)

type Handler struct {
	useCase ProcessPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ProcessPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/payments/{paymentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["paymentId"]

	var req ProcessPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /payments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(paymentID))
	if err != nil {
		switch {
		case errors.Is(err, processPayment.ErrInvalidInput):
			h.logger.Warn("PUT /payments/{id} - Invalid input: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondBadRequest(w, msgInvalidMethod)

		case errors.Is(err, processPayment.ErrPaymentNotFound):
			h.logger.Warn("PUT /payments/{id} - Payment not found: payment_id=%s", paymentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, processPayment.ErrPaymentAlreadyPaid):
			h.logger.Warn("PUT /payments/{id} - Payment already paid: payment_id=%s", paymentID)
			handlers.RespondConflict(w, handlers.CodePaymentAlreadyPaid, msgAlreadyPaid)

		default:
			h.logger.Error("PUT /payments/{id} - Failed to process payment: payment_id=%s, error=%v", paymentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /payments/{id} - Payment processed successfully: payment_id=%s, method=%s",
		paymentID, result.Payment.Method)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
