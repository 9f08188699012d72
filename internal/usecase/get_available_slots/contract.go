package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
}

// SlotCatalog справочник временных слотов
type SlotCatalog interface {
	Slots() []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
