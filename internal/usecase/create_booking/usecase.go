package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BikeService/internal/integrations/events"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	slots        SlotCatalog
	notifier     Notifier
	publisher    EventPublisher
	idGen        IDGenerator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	slots SlotCatalog,
	notifier Notifier,
	publisher EventPublisher,
	idGen IDGenerator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		slots:        slots,
		notifier:     notifier,
		publisher:    publisher,
		idGen:        idGen,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка занятости слота и его резервация - одна атомарная операция хранилища,
// поэтому из конкурентных запросов на один слот успешен ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и валидация входных данных
	normalizeRequest(req)
	uc.logger.Info("CreateBooking: customer=%s, date=%s, slot=%s, location=%s, mechanic=%s",
		req.FullName, req.Date, req.TimeSlot, req.Location, req.Mechanic)

	if err := validateRequest(req, uc.slots); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Формируем бронирование
	now := uc.timeProvider.Now()
	paymentType := domain.PaymentType(req.PaymentType)
	if paymentType == "" {
		paymentType = domain.PaymentTypePaid
	}

	booking := &domain.Booking{
		ID:          uc.idGen.NewID(domain.BookingIDPrefix),
		FullName:    req.FullName,
		Phone:       req.Phone,
		BikeNumber:  req.BikeNumber,
		Email:       req.Email,
		Service:     req.Service,
		Date:        req.Date,
		TimeSlot:    req.TimeSlot,
		Location:    req.Location,
		Mechanic:    req.Mechanic,
		PaymentType: paymentType,
		Status:      domain.StatusPending,
		CreatedAt:   now,
	}
	slotKey := booking.SlotKey()

	// 3. Атомарно резервируем слот
	err := uc.bookingRepo.ReserveSlot(ctx, slotKey, domain.SlotReservation{
		BookingID:  booking.ID,
		ReservedAt: now,
		Customer:   booking.FullName,
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotAlreadyReserved) {
			uc.metrics.IncSlotConflict()
			uc.logger.Warn("CreateBooking: slot %s already booked", slotKey)
			return nil, ErrSlotAlreadyBooked
		}
		uc.logger.Error("CreateBooking: failed to reserve slot %s: %v", slotKey, err)
		return nil, fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
	}

	// 4. Сохраняем бронирование и индексы; при ошибке освобождаем слот
	if err := uc.bookingRepo.Save(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to save booking id=%s: %v", booking.ID, err)
		uc.releaseSlot(ctx, slotKey)
		return nil, fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	if err := uc.bookingRepo.AddToIndexes(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to index booking id=%s: %v", booking.ID, err)
		uc.discardBooking(ctx, booking)
		uc.releaseSlot(ctx, slotKey)
		return nil, fmt.Errorf("%w: failed to index booking: %v", ErrInternal, err)
	}

	// 5. Профиль клиента не влияет на результат
	if err := uc.customerRepo.Upsert(ctx, domain.CustomerFromBooking(booking)); err != nil {
		uc.logger.Warn("CreateBooking: failed to upsert customer phone=%s: %v", booking.Phone, err)
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	// 6. Уведомление после фиксации; ошибка не откатывает бронирование
	emailSent := uc.notifier.Send(ctx, booking)
	if booking.Email != "" {
		uc.metrics.IncNotification(emailSent)
	}
	if !emailSent {
		uc.logger.Warn("CreateBooking: confirmation email not sent for booking id=%s", booking.ID)
	}

	// 7. Событие публикуется по возможности
	if err := uc.publisher.Publish(ctx, events.RoutingBookingCreated, events.NewBookingCreated(booking, emailSent)); err != nil {
		uc.metrics.IncEventPublishFailed(events.RoutingBookingCreated)
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", booking.ID, err)
	}

	return &Response{
		Booking:   booking,
		EmailSent: emailSent,
	}, nil
}

// discardBooking убирает частично созданное бронирование из индексов и хранилища
// Если удалить не удалось, запись помечается отмененной, чтобы не занимать слот в выборках.
func (uc *UseCase) discardBooking(ctx context.Context, booking *domain.Booking) {
	ctx = context.WithoutCancel(ctx)
	err := uc.bookingRepo.Delete(ctx, booking)
	if err == nil {
		return
	}
	uc.logger.Error("CreateBooking: failed to delete booking id=%s: %v", booking.ID, err)

	booking.Status = domain.StatusCancelled
	if err := uc.bookingRepo.Save(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to mark booking id=%s cancelled: %v", booking.ID, err)
	}
}

// releaseSlot компенсирует резервацию, если бронирование не удалось сохранить
func (uc *UseCase) releaseSlot(ctx context.Context, key domain.SlotKey) {
	if err := uc.bookingRepo.ReleaseSlot(context.WithoutCancel(ctx), key); err != nil {
		uc.logger.Error("CreateBooking: failed to release slot %s: %v", key, err)
	}
}
