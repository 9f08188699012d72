package update_booking_status

import "errors"

var (
	// ErrInvalidInput возвращается при пустом ID, неизвестном статусе или слишком длинном partsUsed
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrInvalidTransition возвращается, когда переход статуса запрещен
	ErrInvalidTransition = errors.New("update_booking_status: invalid status transition")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
