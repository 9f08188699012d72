package domain

// Identifier prefixes
const (
	BookingIDPrefix = "B"
	PaymentIDPrefix = "P"
)

// Business validation constants
const (
	MaxFieldLength     = 200
	MaxPartsUsedLength = 1000
)

// DefaultTimeSlots are the daily appointment slots offered by every workshop
var DefaultTimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
}

// AllBookingStatuses lists statuses in lifecycle order
var AllBookingStatuses = []BookingStatus{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}
