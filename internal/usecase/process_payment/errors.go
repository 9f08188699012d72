package process_payment

import "errors"

var (
	// ErrInvalidInput возвращается при пустом ID или неизвестном способе оплаты
	ErrInvalidInput = errors.New("process_payment: invalid input data")

	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = errors.New("process_payment: payment not found")

	// ErrPaymentAlreadyPaid возвращается при повторной оплате
	ErrPaymentAlreadyPaid = errors.New("process_payment: payment is already paid")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("process_payment: internal error")
)
