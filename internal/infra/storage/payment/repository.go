package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	"github.com/m04kA/SMC-BikeService/internal/infra/storage/kv"
)

const (
	pendingPaymentsKey = "payments:pending"
	allPaymentsKey     = "payments:all"
)

func paymentKey(id string) string {
	return "payment:" + id
}

// Repository репозиторий платежей
type Repository struct {
	store kv.Store
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Save записывает платеж целиком
func (r *Repository) Save(ctx context.Context, payment *domain.Payment) error {
	data, err := json.Marshal(toPaymentRecord(payment))
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, paymentKey(payment.ID), data); err != nil {
		return fmt.Errorf("%w: Save - id=%s: %v", ErrStore, payment.ID, err)
	}
	return nil
}

// AddToIndexes добавляет новый платеж в списки ожидающих и всех платежей
func (r *Repository) AddToIndexes(ctx context.Context, payment *domain.Payment) error {
	if err := r.store.Append(ctx, pendingPaymentsKey, payment.ID); err != nil {
		return fmt.Errorf("%w: AddToIndexes - %s: %v", ErrStore, pendingPaymentsKey, err)
	}
	if err := r.store.Append(ctx, allPaymentsKey, payment.ID); err != nil {
		return fmt.Errorf("%w: AddToIndexes - %s: %v", ErrStore, allPaymentsKey, err)
	}
	return nil
}

// RemoveFromPending убирает платеж из списка ожидающих
func (r *Repository) RemoveFromPending(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, pendingPaymentsKey, id); err != nil {
		return fmt.Errorf("%w: RemoveFromPending - id=%s: %v", ErrStore, id, err)
	}
	return nil
}

// Delete удаляет платеж из обоих списков и затем саму запись
func (r *Repository) Delete(ctx context.Context, payment *domain.Payment) error {
	for _, listKey := range []string{pendingPaymentsKey, allPaymentsKey} {
		if err := r.store.Remove(ctx, listKey, payment.ID); err != nil {
			return fmt.Errorf("%w: Delete - %s: %v", ErrStore, listKey, err)
		}
	}
	if err := r.store.Delete(ctx, paymentKey(payment.ID)); err != nil {
		return fmt.Errorf("%w: Delete - id=%s: %v", ErrStore, payment.ID, err)
	}
	return nil
}

// GetByID получает платеж по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	data, err := r.store.Get(ctx, paymentKey(id))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrStore, id, err)
	}

	var rec paymentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: GetByID - id=%s: %v", ErrDecode, id, err)
	}
	return rec.toDomain(), nil
}

// ListPending возвращает платежи, ожидающие оплаты
func (r *Repository) ListPending(ctx context.Context) ([]*domain.Payment, error) {
	return r.listByIndex(ctx, pendingPaymentsKey)
}

// ListAll возвращает все платежи
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Payment, error) {
	return r.listByIndex(ctx, allPaymentsKey)
}

func (r *Repository) listByIndex(ctx context.Context, listKey string) ([]*domain.Payment, error) {
	ids, err := r.store.Members(ctx, listKey)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s - members: %v", ErrStore, listKey, err)
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = paymentKey(id)
	}

	values, err := r.store.MGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s - mget: %v", ErrStore, listKey, err)
	}

	payments := make([]*domain.Payment, 0, len(values))
	for i, data := range values {
		if data == nil {
			continue
		}
		var rec paymentRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("%w: list %s - id=%s: %v", ErrDecode, listKey, ids[i], err)
		}
		payments = append(payments, rec.toDomain())
	}
	return payments, nil
}
