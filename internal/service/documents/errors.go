package documents

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("service.documents: invalid input data")

	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = errors.New("service.documents: payment not found")

	// ErrPaymentNotPaid возвращается при запросе пропуска для неоплаченного платежа
	ErrPaymentNotPaid = errors.New("service.documents: payment is not paid")

	// ErrRender возвращается, когда не удалось сформировать документ
	ErrRender = errors.New("service.documents: failed to render document")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service.documents: internal error")
)
