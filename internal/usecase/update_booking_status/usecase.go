package update_booking_status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BikeService/internal/integrations/events"
)

// UseCase use case для смены статуса бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	locker       KeyLocker
	publisher    EventPublisher
	idGen        IDGenerator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	locker KeyLocker,
	publisher EventPublisher,
	idGen IDGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		locker:       locker,
		publisher:    publisher,
		idGen:        idGen,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет смену статуса
// Обновления одного бронирования выполняются строго последовательно, поэтому
// повторное завершение невозможно и платеж создается не более одного раза.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%s, status=%s", req.BookingID, req.Status)

	// 1. Валидация входных данных
	target, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}
	bookingID := strings.TrimSpace(req.BookingID)

	unlock := uc.locker.Lock(bookingID)
	defer unlock()

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBookingStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to get booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем переход по таблице
	from := booking.Status
	if !from.CanTransitionTo(target) {
		uc.logger.Warn("UpdateBookingStatus: transition %s -> %s not allowed for booking id=%s", from, target, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
	}

	// 4. Побочные эффекты выполняются до сохранения статуса: при ошибке бронирование остается в прежнем статусе
	now := uc.timeProvider.Now()
	updated := *booking
	updated.Status = target
	if req.PartsUsed != nil && strings.TrimSpace(*req.PartsUsed) != "" {
		updated.PartsUsed = strings.TrimSpace(*req.PartsUsed)
	}
	updated.UpdatedAt = &now

	var payment *domain.Payment
	switch target {
	case domain.StatusCancelled:
		if err := uc.releaseOwnSlot(ctx, booking); err != nil {
			return nil, err
		}

	case domain.StatusCompleted:
		payment = domain.NewPaymentForBooking(uc.idGen.NewID(domain.PaymentIDPrefix), &updated, now)
		if err := uc.paymentRepo.Save(ctx, payment); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to save payment for booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: failed to save payment: %v", ErrInternal, err)
		}
		if err := uc.paymentRepo.AddToIndexes(ctx, payment); err != nil {
			uc.logger.Error("UpdateBookingStatus: failed to index payment id=%s: %v", payment.ID, err)
			uc.discardPayment(ctx, payment)
			return nil, fmt.Errorf("%w: failed to index payment: %v", ErrInternal, err)
		}
		uc.logger.Info("UpdateBookingStatus: payment id=%s created for booking id=%s", payment.ID, bookingID)
	}

	// 5. Сохраняем новый статус; при ошибке откатываем побочный эффект
	if err := uc.bookingRepo.Save(ctx, &updated); err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to save booking id=%s: %v", bookingID, err)
		switch target {
		case domain.StatusCancelled:
			uc.restoreSlot(ctx, booking)
		case domain.StatusCompleted:
			uc.discardPayment(ctx, payment)
		}
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	uc.metrics.IncStatusTransition(string(from), string(target))
	uc.logger.Info("UpdateBookingStatus: booking id=%s moved %s -> %s", bookingID, from, target)

	// 6. Событие публикуется по возможности
	event := events.NewBookingStatusChanged(&updated, from, payment, now)
	if err := uc.publisher.Publish(ctx, events.RoutingBookingStatusChanged, event); err != nil {
		uc.metrics.IncEventPublishFailed(events.RoutingBookingStatusChanged)
		uc.logger.Warn("UpdateBookingStatus: failed to publish event for booking id=%s: %v", bookingID, err)
	}

	return &Response{
		Booking: &updated,
		Payment: payment,
	}, nil
}

// releaseOwnSlot освобождает слот, только если он зарезервирован за этим бронированием
func (uc *UseCase) releaseOwnSlot(ctx context.Context, booking *domain.Booking) error {
	key := booking.SlotKey()
	reservation, err := uc.bookingRepo.GetSlotReservation(ctx, key)
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to read slot %s: %v", key, err)
		return fmt.Errorf("%w: failed to read slot: %v", ErrInternal, err)
	}
	if reservation == nil || reservation.BookingID != booking.ID {
		uc.logger.Warn("UpdateBookingStatus: slot %s is not held by booking id=%s, nothing to release", key, booking.ID)
		return nil
	}

	if err := uc.bookingRepo.ReleaseSlot(ctx, key); err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to release slot %s: %v", key, err)
		return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
	}
	uc.logger.Info("UpdateBookingStatus: slot %s released", key)
	return nil
}

// discardPayment удаляет платеж, созданный для перехода, который не удалось завершить
func (uc *UseCase) discardPayment(ctx context.Context, payment *domain.Payment) {
	if err := uc.paymentRepo.Delete(context.WithoutCancel(ctx), payment); err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to delete payment id=%s: %v", payment.ID, err)
	}
}

// restoreSlot возвращает резервацию слота отмененному не до конца бронированию
func (uc *UseCase) restoreSlot(ctx context.Context, booking *domain.Booking) {
	err := uc.bookingRepo.ReserveSlot(context.WithoutCancel(ctx), booking.SlotKey(), domain.SlotReservation{
		BookingID:  booking.ID,
		ReservedAt: booking.CreatedAt,
		Customer:   booking.FullName,
	})
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to restore slot %s for booking id=%s: %v", booking.SlotKey(), booking.ID, err)
	}
}
