package documents

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BikeService/internal/infra/storage/kv"
	paymentRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-BikeService/pkg/logger"
)

type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	bookings *bookingRepo.Repository
	payments *paymentRepo.Repository
	svc      *Service
	now      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := kv.NewMemoryStore()
	f := &fixture{
		bookings: bookingRepo.NewRepository(store),
		payments: paymentRepo.NewRepository(store),
		now:      time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.bookings, f.payments, logger.NewNop())
	f.svc.timeProvider = fixedTime{t: f.now}
	return f
}

func (f *fixture) addBooking(t *testing.T, id, date string, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		ID:          id,
		FullName:    "Asha Verma",
		Phone:       "9876543210",
		BikeNumber:  "MH15AB1234",
		Service:     "Oil Change",
		Date:        date,
		TimeSlot:    "09:00 AM",
		Location:    "Main Service Center",
		Mechanic:    "Ravi Kumar",
		PaymentType: domain.PaymentTypePaid,
		Status:      status,
		CreatedAt:   f.now.Add(-24 * time.Hour),
	}
	require.NoError(t, f.bookings.Save(context.Background(), b))
	require.NoError(t, f.bookings.AddToIndexes(context.Background(), b))
	return b
}

func (f *fixture) addPayment(t *testing.T, id string, b *domain.Booking, method domain.PaymentMethod) *domain.Payment {
	t.Helper()
	p := domain.NewPaymentForBooking(id, b, f.now.Add(-time.Hour))
	p.PartsUsed = "brake pads"
	if method != "" {
		paidAt := f.now.Add(-30 * time.Minute)
		p.Status = domain.PaymentStatusPaid
		p.Method = method
		p.PaidAt = &paidAt
	}
	require.NoError(t, f.payments.Save(context.Background(), p))
	require.NoError(t, f.payments.AddToIndexes(context.Background(), p))
	return p
}

func TestGatePass_Paid(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, "B-1", "2025-06-01", domain.StatusCompleted)
	f.addPayment(t, "P-1", b, domain.PaymentMethodCash)

	pass, data, err := f.svc.GatePass(context.Background(), "P-1")
	require.NoError(t, err)

	assert.Equal(t, "B-1", pass.BookingID)
	assert.Equal(t, "P-1", pass.PaymentID)
	assert.Equal(t, "Asha Verma", pass.CustomerName)
	assert.Equal(t, "MH15AB1234", pass.BikeNumber)
	assert.Equal(t, "brake pads", pass.PartsUsed)
	assert.Equal(t, domain.PaymentMethodCash, pass.PaymentMethod)
	assert.Equal(t, f.now, pass.ExitTime)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestGatePass_Errors(t *testing.T) {
	f := newFixture(t)
	b := f.addBooking(t, "B-1", "2025-06-01", domain.StatusCompleted)
	f.addPayment(t, "P-1", b, "")

	_, _, err := f.svc.GatePass(context.Background(), "P-1")
	assert.ErrorIs(t, err, ErrPaymentNotPaid)

	_, _, err = f.svc.GatePass(context.Background(), "P-404")
	assert.ErrorIs(t, err, ErrPaymentNotFound)

	_, _, err = f.svc.GatePass(context.Background(), " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReport(t *testing.T) {
	f := newFixture(t)
	b1 := f.addBooking(t, "B-1", "2025-06-01", domain.StatusCompleted)
	f.addBooking(t, "B-2", "2025-06-01", domain.StatusPending)
	b3 := f.addBooking(t, "B-3", "2025-06-02", domain.StatusCompleted)
	f.addPayment(t, "P-1", b1, domain.PaymentMethodUPI)
	f.addPayment(t, "P-3", b3, "")

	t.Run("all", func(t *testing.T) {
		data, err := f.svc.Report(context.Background(), "")
		require.NoError(t, err)

		wb, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer wb.Close()

		assert.Equal(t, []string{SheetBookings, SheetPayments}, wb.GetSheetList())

		rows, err := wb.GetRows(SheetBookings)
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, bookingColumns, rows[0])
		assert.Equal(t, "B-1", rows[1][0])
		assert.Equal(t, "completed", rows[1][11])

		rows, err = wb.GetRows(SheetPayments)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "P-1", rows[1][0])
		assert.Equal(t, "paid", rows[1][6])
		assert.Equal(t, "upi", rows[1][7])
	})

	t.Run("filtered by date", func(t *testing.T) {
		data, err := f.svc.Report(context.Background(), " 2025-06-02 ")
		require.NoError(t, err)

		wb, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer wb.Close()

		rows, err := wb.GetRows(SheetBookings)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "B-3", rows[1][0])

		rows, err = wb.GetRows(SheetPayments)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "P-3", rows[1][0])
	})

	t.Run("no matches keeps headers", func(t *testing.T) {
		data, err := f.svc.Report(context.Background(), "2030-01-01")
		require.NoError(t, err)

		wb, err := excelize.OpenReader(bytes.NewReader(data))
		require.NoError(t, err)
		defer wb.Close()

		rows, err := wb.GetRows(SheetBookings)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
