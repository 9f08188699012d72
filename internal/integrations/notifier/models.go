package notifier

import "time"

const (
	DefaultBaseURL = "https://api.resend.com"
	DefaultFrom    = "Bike Service Center <onboarding@resend.dev>"
	DefaultSubject = "Your Bike Service Booking Confirmation"
	DefaultTimeout = 10 * time.Second
)

// Config параметры клиента Resend
type Config struct {
	BaseURL string
	APIKey  string
	From    string
	Subject string
	Timeout time.Duration

	// Ограничение частоты отправки: RatePerSecond писем в секунду с запасом Burst
	RatePerSecond float64
	Burst         int
}

// sendEmailRequest тело запроса POST /emails
type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// sendEmailResponse ответ Resend при успешной отправке
type sendEmailResponse struct {
	ID string `json:"id"`
}

// errorResponse модель ошибки от Resend
type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}
