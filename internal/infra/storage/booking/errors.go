package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrSlotAlreadyReserved возвращается, когда слот уже занят другим бронированием
	ErrSlotAlreadyReserved = errors.New("booking.repository: slot already reserved")

	// ErrEncode возвращается при ошибке сериализации записи
	ErrEncode = errors.New("booking.repository: failed to encode record")

	// ErrDecode возвращается при ошибке десериализации записи
	ErrDecode = errors.New("booking.repository: failed to decode record")

	// ErrStore возвращается при ошибке хранилища
	ErrStore = errors.New("booking.repository: store error")
)
