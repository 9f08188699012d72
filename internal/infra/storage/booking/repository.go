package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	"github.com/m04kA/SMC-BikeService/internal/infra/storage/kv"
)

const allBookingsKey = "bookings:all"

func bookingKey(id string) string {
	return "booking:" + id
}

func mechanicBookingsKey(mechanic string) string {
	return "mechanic:" + mechanic + ":bookings"
}

// Repository репозиторий бронирований и резерваций слотов
type Repository struct {
	store Store
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// ReserveSlot атомарно резервирует слот за бронированием
// Проверка занятости и запись выполняются одной операцией SetIfAbsent,
// поэтому из нескольких конкурентных вызовов для одного слота успешен ровно один.
func (r *Repository) ReserveSlot(ctx context.Context, key domain.SlotKey, reservation domain.SlotReservation) error {
	data, err := json.Marshal(toSlotRecord(reservation))
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - marshal: %v", ErrEncode, err)
	}

	ok, err := r.store.SetIfAbsent(ctx, key.String(), data)
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - key=%s: %v", ErrStore, key, err)
	}
	if !ok {
		return ErrSlotAlreadyReserved
	}
	return nil
}

// ReleaseSlot освобождает слот
func (r *Repository) ReleaseSlot(ctx context.Context, key domain.SlotKey) error {
	if err := r.store.Delete(ctx, key.String()); err != nil {
		return fmt.Errorf("%w: ReleaseSlot - key=%s: %v", ErrStore, key, err)
	}
	return nil
}

// GetSlotReservation возвращает резервацию слота или nil, если слот свободен
func (r *Repository) GetSlotReservation(ctx context.Context, key domain.SlotKey) (*domain.SlotReservation, error) {
	data, err := r.store.Get(ctx, key.String())
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: GetSlotReservation - key=%s: %v", ErrStore, key, err)
	}

	var rec slotRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: GetSlotReservation - key=%s: %v", ErrDecode, key, err)
	}
	return rec.toDomain(), nil
}

// Save записывает бронирование целиком
func (r *Repository) Save(ctx context.Context, booking *domain.Booking) error {
	data, err := json.Marshal(toBookingRecord(booking))
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, bookingKey(booking.ID), data); err != nil {
		return fmt.Errorf("%w: Save - id=%s: %v", ErrStore, booking.ID, err)
	}
	return nil
}

// AddToIndexes добавляет бронирование в общий список и в список механика
func (r *Repository) AddToIndexes(ctx context.Context, booking *domain.Booking) error {
	if err := r.store.Append(ctx, allBookingsKey, booking.ID); err != nil {
		return fmt.Errorf("%w: AddToIndexes - %s: %v", ErrStore, allBookingsKey, err)
	}
	if err := r.store.Append(ctx, mechanicBookingsKey(booking.Mechanic), booking.ID); err != nil {
		return fmt.Errorf("%w: AddToIndexes - mechanic=%s: %v", ErrStore, booking.Mechanic, err)
	}
	return nil
}

// Delete удаляет бронирование из индексов и затем саму запись
func (r *Repository) Delete(ctx context.Context, booking *domain.Booking) error {
	if err := r.store.Remove(ctx, allBookingsKey, booking.ID); err != nil {
		return fmt.Errorf("%w: Delete - %s: %v", ErrStore, allBookingsKey, err)
	}
	if err := r.store.Remove(ctx, mechanicBookingsKey(booking.Mechanic), booking.ID); err != nil {
		return fmt.Errorf("%w: Delete - mechanic=%s: %v", ErrStore, booking.Mechanic, err)
	}
	if err := r.store.Delete(ctx, bookingKey(booking.ID)); err != nil {
		return fmt.Errorf("%w: Delete - id=%s: %v", ErrStore, booking.ID, err)
	}
	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	data, err := r.store.Get(ctx, bookingKey(id))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrStore, id, err)
	}

	var rec bookingRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// ListAll возвращает все бронирования в порядке создания
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	return r.listByIndex(ctx, allBookingsKey)
}

// ListByMechanic возвращает бронирования механика в порядке создания
func (r *Repository) ListByMechanic(ctx context.Context, mechanic string) ([]*domain.Booking, error) {
	return r.listByIndex(ctx, mechanicBookingsKey(mechanic))
}

// listByIndex читает ID из списка и загружает записи одним MGet
// Записи, на которые ссылается список, но которых нет в хранилище, пропускаются.
func (r *Repository) listByIndex(ctx context.Context, listKey string) ([]*domain.Booking, error) {
	ids, err := r.store.Members(ctx, listKey)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s - members: %v", ErrStore, listKey, err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = bookingKey(id)
	}

	values, err := r.store.MGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s - mget: %v", ErrStore, listKey, err)
	}

	bookings := make([]*domain.Booking, 0, len(values))
	for i, data := range values {
		if data == nil {
			continue
		}
		var rec bookingRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: list %s - id=%s: %v", ErrDecode, listKey, ids[i], err)
		}
		bookings = append(bookings, rec.toDomain())
	}
	return bookings, nil
}
