package bookings

import (
	"context"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListByMechanic(ctx context.Context, mechanic string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
