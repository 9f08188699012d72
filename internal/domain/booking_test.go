package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusPending, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusInProgress, false},
		{StatusCompleted, StatusCompleted, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusCancelled, false},
		{BookingStatus("archived"), StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, BookingStatus("unknown").IsTerminal())
}

func TestBookingStatus_IsValid(t *testing.T) {
	for _, s := range AllBookingStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, BookingStatus("in_progress").IsValid())
	assert.False(t, BookingStatus("").IsValid())
}

func TestSlotKey_String(t *testing.T) {
	b := &Booking{Date: "2025-06-01", Location: "Main Service Center", Mechanic: "Ravi Kumar", TimeSlot: "09:00 AM"}
	assert.Equal(t, "slot:2025-06-01:Main Service Center:Ravi Kumar:09:00 AM", b.SlotKey().String())
}

func TestBooking_MatchesAndActive(t *testing.T) {
	b := &Booking{Date: "d", Location: "l", Mechanic: "m", Status: StatusPending}
	assert.True(t, b.Matches("d", "l", "m"))
	assert.False(t, b.Matches("d", "l", "x"))
	assert.True(t, b.IsActive())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
}

func TestNewPaymentForBooking(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	b := &Booking{ID: "B-1", FullName: "Asha", BikeNumber: "MH15AB1234", Service: "Oil Change", PartsUsed: "oil filter"}

	p := NewPaymentForBooking("P-1", b, now)

	assert.Equal(t, "P-1", p.ID)
	assert.Equal(t, "B-1", p.BookingID)
	assert.Equal(t, "Asha", p.CustomerName)
	assert.Equal(t, "MH15AB1234", p.BikeNumber)
	assert.Equal(t, "Oil Change", p.Service)
	assert.Equal(t, "oil filter", p.PartsUsed)
	assert.Equal(t, PaymentStatusPending, p.Status)
	assert.False(t, p.IsPaid())
	assert.Nil(t, p.PaidAt)
	assert.Equal(t, now, p.CreatedAt)
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodCard.IsValid())
	assert.True(t, PaymentMethodUPI.IsValid())
	assert.False(t, PaymentMethod("cheque").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}
