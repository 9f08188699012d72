package domain

// Customer is the contact profile remembered from the latest booking under a phone number
type Customer struct {
	FullName   string
	Phone      string
	Email      string
	BikeNumber string
}

// CustomerFromBooking extracts the profile part of a booking
func CustomerFromBooking(b *Booking) *Customer {
	return &Customer{
		FullName:   b.FullName,
		Phone:      b.Phone,
		Email:      b.Email,
		BikeNumber: b.BikeNumber,
	}
}
