package get_mechanic_bookings

import (
	"context"

	"github.com/m04kA/SMC-BikeService/internal/service/bookings/models"
)

type BookingService interface {
	ListByMechanic(ctx context.Context, mechanic string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
