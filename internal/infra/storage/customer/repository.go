package customer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	"github.com/m04kA/SMC-BikeService/internal/infra/storage/kv"
)

var (
	// ErrCustomerNotFound возвращается, когда профиль клиента не найден
	ErrCustomerNotFound = errors.New("customer.repository: customer not found")

	// ErrStore возвращается при ошибке хранилища или сериализации
	ErrStore = errors.New("customer.repository: store error")
)

type customerRecord struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Email      string `json:"email,omitempty"`
	BikeNumber string `json:"bikeNumber"`
}

func customerKey(phone string) string {
	return "customer:" + phone
}

// Repository профили клиентов, ключ - номер телефона
type Repository struct {
	store kv.Store
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(store kv.Store) *Repository {
	return &Repository{store: store}
}

// Upsert перезаписывает профиль клиента данными последнего бронирования
func (r *Repository) Upsert(ctx context.Context, c *domain.Customer) error {
	data, err := json.Marshal(customerRecord{
		FullName:   c.FullName,
		Phone:      c.Phone,
		Email:      c.Email,
		BikeNumber: c.BikeNumber,
	})
	if err != nil {
		return fmt.Errorf("%w: Upsert - marshal: %v", ErrStore, err)
	}

	if err := r.store.Set(ctx, customerKey(c.Phone), data); err != nil {
		return fmt.Errorf("%w: Upsert - phone=%s: %v", ErrStore, c.Phone, err)
	}
	return nil
}

// GetByPhone получает профиль клиента по телефону
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	data, err := r.store.Get(ctx, customerKey(phone))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("%w: GetByPhone - phone=%s: %v", ErrStore, phone, err)
	}

	var rec customerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - decode: %v", ErrStore, err)
	}
	return &domain.Customer{
		FullName:   rec.FullName,
		Phone:      rec.Phone,
		Email:      rec.Email,
		BikeNumber: rec.BikeNumber,
	}, nil
}
