package update_booking_status

import "github.com/m04kA/SMC-BikeService/internal/domain"

// Request модель запроса на смену статуса
type Request struct {
	BookingID string
	Status    string
	PartsUsed *string // nil или пустая строка - сохранить текущее значение
}

// Response модель ответа
type Response struct {
	Booking *domain.Booking
	Payment *domain.Payment // заполняется только при переходе в completed
}
