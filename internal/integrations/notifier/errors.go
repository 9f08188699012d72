package notifier

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API ключ
	ErrNotConfigured = errors.New("notifier: api key is not configured")

	// ErrRateLimited возвращается, когда превышен лимит отправки
	ErrRateLimited = errors.New("notifier: rate limit exceeded")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Resend
	ErrInvalidResponse = errors.New("notifier: invalid response")
)
