package payments

import (
	"context"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	ListPending(ctx context.Context) ([]*domain.Payment, error)
	ListAll(ctx context.Context) ([]*domain.Payment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
