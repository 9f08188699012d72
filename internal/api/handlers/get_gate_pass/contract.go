package get_gate_pass

import (
	"context"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

type DocumentService interface {
	GatePass(ctx context.Context, paymentID string) (*domain.GatePass, []byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
