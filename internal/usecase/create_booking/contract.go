package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ReserveSlot(ctx context.Context, key domain.SlotKey, reservation domain.SlotReservation) error
	ReleaseSlot(ctx context.Context, key domain.SlotKey) error
	Save(ctx context.Context, booking *domain.Booking) error
	AddToIndexes(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, booking *domain.Booking) error
}

// CustomerRepository интерфейс репозитория профилей клиентов
type CustomerRepository interface {
	Upsert(ctx context.Context, customer *domain.Customer) error
}

// SlotCatalog справочник допустимых временных слотов
type SlotCatalog interface {
	IsValidTimeSlot(slot string) bool
}

// Notifier отправляет подтверждение бронирования клиенту
type Notifier interface {
	Send(ctx context.Context, booking *domain.Booking) bool
}

// EventPublisher публикует события жизненного цикла
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// IDGenerator генерирует идентификаторы записей
type IDGenerator interface {
	NewID(prefix string) string
}

// Metrics бизнес-метрики создания бронирований
type Metrics interface {
	IncBookingCreated()
	IncSlotConflict()
	IncNotification(sent bool)
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
