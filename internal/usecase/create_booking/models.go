package create_booking

import "github.com/m04kA/SMC-BikeService/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	FullName    string `validate:"required,max=200"`
	Phone       string `validate:"required,max=200"`
	BikeNumber  string `validate:"required,max=200"`
	Email       string `validate:"omitempty,max=200,email"` // опционально
	Service     string `validate:"required,max=200"`
	Date        string `validate:"required,max=200,excludesall=:"` // день как его ввел клиент, не парсится
	TimeSlot    string `validate:"required"`
	Location    string `validate:"required,max=200,excludesall=:"`
	Mechanic    string `validate:"required,max=200,excludesall=:"`
	PaymentType string `validate:"omitempty,oneof=paid free"` // по умолчанию paid
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking   *domain.Booking
	EmailSent bool // false, если письмо не удалось отправить
}
