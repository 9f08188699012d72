package process_payment

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.PaymentMethod, error) {
	if strings.TrimSpace(req.PaymentID) == "" {
		return "", fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}

	method := domain.PaymentMethod(strings.ToLower(strings.TrimSpace(req.Method)))
	if method == "" {
		return "", fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}
	if !method.IsValid() {
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}

	return method, nil
}
