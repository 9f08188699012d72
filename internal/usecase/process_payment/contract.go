package process_payment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Save(ctx context.Context, payment *domain.Payment) error
	RemoveFromPending(ctx context.Context, id string) error
}

// KeyLocker сериализует обработку одного платежа
type KeyLocker interface {
	Lock(key string) func()
}

// EventPublisher публикует события жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Metrics бизнес-метрики оплаты
type Metrics interface {
	IncPaymentProcessed(method string)
	IncEventPublishFailed(routingKey string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
