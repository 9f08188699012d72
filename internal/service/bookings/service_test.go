package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BikeService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BikeService/pkg/logger"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) ListByMechanic(ctx context.Context, mechanic string) ([]*domain.Booking, error) {
	args := m.Called(ctx, mechanic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func booking(id string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		FullName:    "Asha Verma",
		Phone:       "9876543210",
		BikeNumber:  "MH15AB1234",
		Service:     "Oil Change",
		Date:        "2025-06-01",
		TimeSlot:    "09:00 AM",
		Location:    "Main Service Center",
		Mechanic:    "Ravi Kumar",
		PaymentType: domain.PaymentTypePaid,
		Status:      status,
		CreatedAt:   time.Date(2025, 5, 30, 10, 0, 0, 0, time.UTC),
	}
}

func strPtr(s string) *string { return &s }

func TestGetByID(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("GetByID", mock.Anything, "B-1").Return(booking("B-1", domain.StatusPending), nil)
	repo.On("GetByID", mock.Anything, "B-404").Return(nil, bookingRepo.ErrBookingNotFound)
	repo.On("GetByID", mock.Anything, "B-err").Return(nil, bookingRepo.ErrStore)

	svc := NewService(repo, logger.NewNop())

	resp, err := svc.GetByID(context.Background(), " B-1 ")
	require.NoError(t, err)
	assert.Equal(t, "B-1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "paid", resp.PaymentType)

	_, err = svc.GetByID(context.Background(), "B-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = svc.GetByID(context.Background(), "B-err")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.GetByID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListAll(t *testing.T) {
	all := []*domain.Booking{
		booking("B-1", domain.StatusPending),
		booking("B-2", domain.StatusCancelled),
		booking("B-3", domain.StatusPending),
	}
	repo := new(mockBookingRepo)
	repo.On("ListAll", mock.Anything).Return(all, nil)
	svc := NewService(repo, logger.NewNop())

	t.Run("no filter keeps order", func(t *testing.T) {
		resp, err := svc.ListAll(context.Background(), &models.ListBookingsRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 3)
		assert.Equal(t, "B-1", resp.Bookings[0].ID)
		assert.Equal(t, "B-3", resp.Bookings[2].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		resp, err := svc.ListAll(context.Background(), &models.ListBookingsRequest{Status: strPtr("Cancelled")})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "B-2", resp.Bookings[0].ID)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := svc.ListAll(context.Background(), &models.ListBookingsRequest{Status: strPtr("archived")})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestListAll_Empty(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("ListAll", mock.Anything).Return([]*domain.Booking{}, nil)
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.ListAll(context.Background(), &models.ListBookingsRequest{})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestListByMechanic(t *testing.T) {
	repo := new(mockBookingRepo)
	repo.On("ListByMechanic", mock.Anything, "Ravi Kumar").Return([]*domain.Booking{booking("B-1", domain.StatusInProgress)}, nil)
	repo.On("ListByMechanic", mock.Anything, "Broken").Return(nil, bookingRepo.ErrStore)
	svc := NewService(repo, logger.NewNop())

	resp, err := svc.ListByMechanic(context.Background(), "Ravi Kumar")
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "in-progress", resp.Bookings[0].Status)

	_, err = svc.ListByMechanic(context.Background(), "Broken")
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.ListByMechanic(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
