package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// Logger интерфейс логгера клиента
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки писем через Resend
type Client struct {
	baseURL    string
	apiKey     string
	from       string
	subject    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента Resend
// Пустые поля конфигурации заменяются значениями по умолчанию; RatePerSecond <= 0 отключает лимит.
func NewClient(cfg Config, log Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.From == "" {
		cfg.From = DefaultFrom
	}
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		subject: cfg.Subject,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: limiter,
		log:     log,
	}
}

// Send отправляет подтверждение бронирования и сообщает, удалось ли это
// Бронирование без email считается успешно обработанным. Ошибки только логируются.
func (c *Client) Send(ctx context.Context, booking *domain.Booking) bool {
	if booking.Email == "" {
		c.log.Info("Notifier: no email for booking id=%s, skipping confirmation", booking.ID)
		return true
	}

	id, err := c.SendConfirmation(ctx, booking)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			c.log.Error("Notifier: RESEND_API_KEY not configured, skipping email for booking id=%s", booking.ID)
		case errors.Is(err, ErrRateLimited):
			c.log.Warn("Notifier: rate limit exceeded, email for booking id=%s not sent", booking.ID)
		default:
			c.log.Error("Notifier: failed to send email for booking id=%s: %v", booking.ID, err)
		}
		return false
	}

	c.log.Info("Notifier: confirmation sent for booking id=%s, email_id=%s", booking.ID, id)
	return true
}

// SendConfirmation отправляет письмо и возвращает его ID в Resend
func (c *Client) SendConfirmation(ctx context.Context, booking *domain.Booking) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}
	if !c.limiter.Allow() {
		return "", ErrRateLimited
	}

	html, err := renderConfirmation(booking)
	if err != nil {
		return "", fmt.Errorf("%w: failed to render template: %v", ErrInternal, err)
	}

	body, err := json.Marshal(sendEmailRequest{
		From:    c.from,
		To:      []string{booking.Email},
		Subject: c.subject,
		HTML:    html,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Name, apiErr.Message)
		}
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result.ID, nil
}
