package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("payment.repository: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("payment.repository: failed to decode record")

	// ErrStore возвращается при ошибке хранилища
	ErrStore = errors.New("payment.repository: store error")
)
