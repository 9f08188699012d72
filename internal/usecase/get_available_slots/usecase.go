package get_available_slots

import (
	"context"
	"fmt"
)

// UseCase use case для получения занятости механика на дату
type UseCase struct {
	bookingRepo BookingRepository
	slots       SlotCatalog
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, slots SlotCatalog, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slots:       slots,
		logger:      logger,
	}
}

// Execute выполняет use case получения занятых и свободных слотов
// Занятыми считаются слоты бронирований с точным совпадением даты, локации и механика,
// кроме отмененных.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, location=%s, mechanic=%s", req.Date, req.Location, req.Mechanic)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все бронирования
	bookings, err := uc.bookingRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 3. Отбираем активные бронирования механика
	booked := make([]string, 0)
	taken := make(map[string]bool)
	for _, b := range bookings {
		if !b.Matches(req.Date, req.Location, req.Mechanic) || !b.IsActive() {
			continue
		}
		booked = append(booked, b.TimeSlot)
		taken[b.TimeSlot] = true
	}

	// 4. Свободные слоты считаем по расписанию
	available := make([]string, 0)
	for _, slot := range uc.slots.Slots() {
		if !taken[slot] {
			available = append(available, slot)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d booked, %d available", len(booked), len(available))

	return &Response{
		BookedSlots:    booked,
		AvailableSlots: available,
	}, nil
}
