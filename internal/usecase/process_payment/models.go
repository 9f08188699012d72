package process_payment

import "github.com/m04kA/SMC-BikeService/internal/domain"

// Request модель запроса на оплату
type Request struct {
	PaymentID string
	Method    string // cash, card или upi
}

// Response модель ответа с оплаченным платежом
type Response struct {
	Payment *domain.Payment
}
