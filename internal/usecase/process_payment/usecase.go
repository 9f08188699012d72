package process_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-BikeService/internal/integrations/events"
)

// UseCase use case для оплаты платежа
type UseCase struct {
	paymentRepo  PaymentRepository
	locker       KeyLocker
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	paymentRepo PaymentRepository,
	locker KeyLocker,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo:  paymentRepo,
		locker:       locker,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отмечает платеж оплаченным и убирает его из списка ожидающих
// Бронирование при этом не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProcessPayment: payment=%s, method=%s", req.PaymentID, req.Method)

	// 1. Валидация входных данных
	method, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ProcessPayment: validation failed: %v", err)
		return nil, err
	}
	paymentID := strings.TrimSpace(req.PaymentID)

	unlock := uc.locker.Lock(paymentID)
	defer unlock()

	// 2. Получаем платеж
	payment, err := uc.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Warn("ProcessPayment: payment id=%s not found", paymentID)
			return nil, ErrPaymentNotFound
		}
		uc.logger.Error("ProcessPayment: failed to get payment id=%s: %v", paymentID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %v", ErrInternal, err)
	}

	// 3. Повторная оплата запрещена
	if payment.IsPaid() {
		uc.logger.Warn("ProcessPayment: payment id=%s already paid via %s", paymentID, payment.Method)
		return nil, ErrPaymentAlreadyPaid
	}

	// 4. Сохраняем оплату
	now := uc.timeProvider.Now()
	payment.Status = domain.PaymentStatusPaid
	payment.Method = method
	payment.PaidAt = &now

	if err := uc.paymentRepo.Save(ctx, payment); err != nil {
		uc.logger.Error("ProcessPayment: failed to save payment id=%s: %v", paymentID, err)
		return nil, fmt.Errorf("%w: failed to save payment: %v", ErrInternal, err)
	}

	if err := uc.paymentRepo.RemoveFromPending(ctx, paymentID); err != nil {
		uc.logger.Error("ProcessPayment: failed to remove payment id=%s from pending: %v", paymentID, err)
		return nil, fmt.Errorf("%w: failed to update pending list: %v", ErrInternal, err)
	}

	uc.metrics.IncPaymentProcessed(string(method))
	uc.logger.Info("ProcessPayment: payment id=%s paid via %s", paymentID, method)

	// 5. Событие публикуется по возможности
	if err := uc.publisher.Publish(ctx, events.RoutingPaymentProcessed, events.NewPaymentProcessed(payment, now)); err != nil {
		uc.metrics.IncEventPublishFailed(events.RoutingPaymentProcessed)
		uc.logger.Warn("ProcessPayment: failed to publish event for payment id=%s: %v", paymentID, err)
	}

	return &Response{Payment: payment}, nil
}
