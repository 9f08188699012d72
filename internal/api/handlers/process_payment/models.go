package process_payment

import (
	"github.com/m04kA/SMC-BikeService/internal/service/payments/models"
	processPayment "github.com/m04kA/SMC-BikeService/internal/usecase/process_payment"
)

// ProcessPaymentRequest HTTP request model
type ProcessPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// ProcessPaymentResponse HTTP response model
type ProcessPaymentResponse struct {
	Success bool                    `json:"success"`
	Payment *models.PaymentResponse `json:"payment"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ProcessPaymentRequest) ToUseCaseRequest(paymentID string) *processPayment.Request {
	return &processPayment.Request{
		PaymentID: paymentID,
		Method:    r.PaymentMethod,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *processPayment.Response) *ProcessPaymentResponse {
	return &ProcessPaymentResponse{
		Success: true,
		Payment: models.FromDomainPayment(resp.Payment),
	}
}
