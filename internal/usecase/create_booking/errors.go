package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// Все ошибки валидации ниже оборачиваются в неё.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrMissingFields возвращается, когда не заполнено обязательное поле
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в расписание
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("create_booking: invalid email")

	// ErrInvalidPaymentType возвращается, когда тип оплаты не paid/free
	ErrInvalidPaymentType = errors.New("create_booking: invalid payment type")

	// ErrFieldTooLong возвращается, когда значение поля слишком длинное
	ErrFieldTooLong = errors.New("create_booking: field is too long")

	// ErrInvalidSeparator возвращается, когда дата, локация или механик содержат ':'
	ErrInvalidSeparator = errors.New("create_booking: date, location and mechanic must not contain ':'")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
