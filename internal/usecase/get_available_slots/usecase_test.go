package get_available_slots

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BikeService/internal/catalog"
	"github.com/m04kA/SMC-BikeService/internal/domain"
	"github.com/m04kA/SMC-BikeService/pkg/logger"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func booking(slot, mechanic string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		Date:     "2025-06-01",
		Location: "Main Service Center",
		Mechanic: mechanic,
		TimeSlot: slot,
		Status:   status,
	}
}

func TestExecute_ReturnsBookedAndAvailable(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookingRepo)
	repo.On("ListAll", ctx).Return([]*domain.Booking{
		booking("11:00 AM", "Ravi Kumar", domain.StatusPending),
		booking("09:00 AM", "Ravi Kumar", domain.StatusInProgress),
		booking("10:00 AM", "Ravi Kumar", domain.StatusCancelled),
		booking("12:00 PM", "Suresh Patel", domain.StatusPending),
		booking("02:00 PM", "Ravi Kumar", domain.StatusCompleted),
		{Date: "2025-06-02", Location: "Main Service Center", Mechanic: "Ravi Kumar", TimeSlot: "03:00 PM", Status: domain.StatusPending},
		{Date: "2025-06-01", Location: "Eastside Garage", Mechanic: "Ravi Kumar", TimeSlot: "04:00 PM", Status: domain.StatusPending},
	}, nil).Once()

	uc := NewUseCase(repo, catalog.Default(), logger.NewNop())

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01", Location: "Main Service Center", Mechanic: "Ravi Kumar"})
	require.NoError(t, err)

	assert.Equal(t, []string{"11:00 AM", "09:00 AM", "02:00 PM"}, resp.BookedSlots)
	assert.Equal(t, []string{"10:00 AM", "12:00 PM", "03:00 PM", "04:00 PM", "05:00 PM"}, resp.AvailableSlots)
	repo.AssertExpectations(t)
}

func TestExecute_NoBookings(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookingRepo)
	repo.On("ListAll", ctx).Return([]*domain.Booking{}, nil).Once()

	uc := NewUseCase(repo, catalog.Default(), logger.NewNop())

	resp, err := uc.Execute(ctx, &Request{Date: "d", Location: "l", Mechanic: "m"})
	require.NoError(t, err)
	assert.Empty(t, resp.BookedSlots)
	assert.NotNil(t, resp.BookedSlots)
	assert.Len(t, resp.AvailableSlots, 8)
}

func TestExecute_MissingParams(t *testing.T) {
	repo := new(mockBookingRepo)
	uc := NewUseCase(repo, catalog.Default(), logger.NewNop())

	for _, req := range []*Request{
		{Location: "l", Mechanic: "m"},
		{Date: "d", Mechanic: "m"},
		{Date: "d", Location: "l"},
		{Date: " ", Location: "l", Mechanic: "m"},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	repo.AssertNotCalled(t, "ListAll", mock.Anything)
}

func TestExecute_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookingRepo)
	repo.On("ListAll", ctx).Return(nil, errors.New("store down")).Once()

	uc := NewUseCase(repo, catalog.Default(), logger.NewNop())

	_, err := uc.Execute(ctx, &Request{Date: "d", Location: "l", Mechanic: "m"})
	assert.ErrorIs(t, err, ErrInternal)
}
