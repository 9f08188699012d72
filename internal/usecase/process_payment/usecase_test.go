package process_payment

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	"github.com/m04kA/SMC-BikeService/internal/infra/storage/kv"
	paymentRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-BikeService/internal/integrations/events"
	"github.com/m04kA/SMC-BikeService/pkg/keylock"
	"github.com/m04kA/SMC-BikeService/pkg/logger"
	"github.com/m04kA/SMC-BikeService/pkg/metrics"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, payload any) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *mockPaymentRepo) Save(ctx context.Context, payment *domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *mockPaymentRepo) RemoveFromPending(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	payments  *paymentRepo.Repository
	publisher *mockPublisher
	uc        *UseCase
	now       time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		payments:  paymentRepo.NewRepository(kv.NewMemoryStore()),
		publisher: new(mockPublisher),
		now:       time.Date(2025, 6, 1, 17, 0, 0, 0, time.UTC),
	}
	f.uc = NewUseCase(f.payments, keylock.New(), f.publisher, metrics.New("test"), logger.NewNop())
	f.uc.timeProvider = fixedTime{t: f.now}
	return f
}

func (f *fixture) seedPending(t *testing.T, id string) *domain.Payment {
	t.Helper()
	ctx := context.Background()
	b := &domain.Booking{
		ID:         "B-1",
		FullName:   "Asha Verma",
		BikeNumber: "MH15AB1234",
		Service:    "Oil Change",
		PartsUsed:  "oil filter",
	}
	p := domain.NewPaymentForBooking(id, b, f.now.Add(-time.Hour))
	require.NoError(t, f.payments.Save(ctx, p))
	require.NoError(t, f.payments.AddToIndexes(ctx, p))
	return p
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPending(t, "P-1")

	f.publisher.On("Publish", mock.Anything, events.RoutingPaymentProcessed, events.PaymentProcessed{
		PaymentID:  "P-1",
		BookingID:  "B-1",
		Method:     "upi",
		OccurredAt: f.now,
	}).Return(nil).Once()

	resp, err := f.uc.Execute(ctx, &Request{PaymentID: "P-1", Method: " UPI "})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPaid, resp.Payment.Status)
	assert.Equal(t, domain.PaymentMethodUPI, resp.Payment.Method)
	require.NotNil(t, resp.Payment.PaidAt)
	assert.True(t, f.now.Equal(*resp.Payment.PaidAt))

	stored, err := f.payments.GetByID(ctx, "P-1")
	require.NoError(t, err)
	assert.True(t, stored.IsPaid())
	assert.Equal(t, domain.PaymentMethodUPI, stored.Method)

	pending, err := f.payments.ListPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	all, err := f.payments.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	f.publisher.AssertExpectations(t)
}

func TestExecute_AlreadyPaid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seedPending(t, "P-1")
	f.publisher.On("Publish", mock.Anything, events.RoutingPaymentProcessed, mock.Anything).Return(nil).Once()

	_, err := f.uc.Execute(ctx, &Request{PaymentID: "P-1", Method: "cash"})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, &Request{PaymentID: "P-1", Method: "card"})
	assert.ErrorIs(t, err, ErrPaymentAlreadyPaid)

	stored, err := f.payments.GetByID(ctx, "P-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentMethodCash, stored.Method)
	f.publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestExecute_ConcurrentPayOnce(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, "P-1")
	f.publisher.On("Publish", mock.Anything, events.RoutingPaymentProcessed, mock.Anything).Return(nil)

	const workers = 10
	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.Execute(context.Background(), &Request{PaymentID: "P-1", Method: "card"})
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, ErrPaymentAlreadyPaid):
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(workers-1), rejected.Load())
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{PaymentID: "P-404", Method: "cash"})
	assert.ErrorIs(t, err, ErrPaymentNotFound)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{name: "empty id", req: Request{PaymentID: "  ", Method: "cash"}},
		{name: "empty method", req: Request{PaymentID: "P-1", Method: ""}},
		{name: "unknown method", req: Request{PaymentID: "P-1", Method: "cheque"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.seedPending(t, "P-1")

			_, err := f.uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			stored, err := f.payments.GetByID(context.Background(), "P-1")
			require.NoError(t, err)
			assert.False(t, stored.IsPaid())
		})
	}
}

func TestExecute_PublishFailureIsIgnored(t *testing.T) {
	f := newFixture(t)
	f.seedPending(t, "P-1")
	f.publisher.On("Publish", mock.Anything, events.RoutingPaymentProcessed, mock.Anything).Return(errors.New("broker down")).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{PaymentID: "P-1", Method: "cash"})
	require.NoError(t, err)
	assert.True(t, resp.Payment.IsPaid())
}

func TestExecute_RepositoryErrors(t *testing.T) {
	pending := func() *domain.Payment {
		return &domain.Payment{ID: "P-1", BookingID: "B-1", Status: domain.PaymentStatusPending}
	}

	t.Run("get fails", func(t *testing.T) {
		repo := new(mockPaymentRepo)
		repo.On("GetByID", mock.Anything, "P-1").Return(nil, paymentRepo.ErrStore)

		uc := NewUseCase(repo, keylock.New(), new(mockPublisher), metrics.New("test"), logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{PaymentID: "P-1", Method: "cash"})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("save fails", func(t *testing.T) {
		repo := new(mockPaymentRepo)
		repo.On("GetByID", mock.Anything, "P-1").Return(pending(), nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(paymentRepo.ErrStore)

		uc := NewUseCase(repo, keylock.New(), new(mockPublisher), metrics.New("test"), logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{PaymentID: "P-1", Method: "cash"})
		assert.ErrorIs(t, err, ErrInternal)
		repo.AssertNotCalled(t, "RemoveFromPending", mock.Anything, mock.Anything)
	})

	t.Run("pending list update fails", func(t *testing.T) {
		repo := new(mockPaymentRepo)
		repo.On("GetByID", mock.Anything, "P-1").Return(pending(), nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		repo.On("RemoveFromPending", mock.Anything, "P-1").Return(paymentRepo.ErrStore)

		uc := NewUseCase(repo, keylock.New(), new(mockPublisher), metrics.New("test"), logger.NewNop())
		_, err := uc.Execute(context.Background(), &Request{PaymentID: "P-1", Method: "cash"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}
