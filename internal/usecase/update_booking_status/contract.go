package update_booking_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Save(ctx context.Context, booking *domain.Booking) error
	GetSlotReservation(ctx context.Context, key domain.SlotKey) (*domain.SlotReservation, error)
	ReserveSlot(ctx context.Context, key domain.SlotKey, reservation domain.SlotReservation) error
	ReleaseSlot(ctx context.Context, key domain.SlotKey) error
}

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	Save(ctx context.Context, payment *domain.Payment) error
	AddToIndexes(ctx context.Context, payment *domain.Payment) error
	Delete(ctx context.Context, payment *domain.Payment) error
}

// KeyLocker сериализует обновления одного бронирования
type KeyLocker interface {
	Lock(key string) func()
}

// EventPublisher публикует события жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// IDGenerator генерирует идентификаторы записей
type IDGenerator interface {
	NewID(prefix string) string
}

// Metrics бизнес-метрики смены статусов
type Metrics interface {
	IncStatusTransition(from, to string)
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
