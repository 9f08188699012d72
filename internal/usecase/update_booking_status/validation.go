package update_booking_status

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-BikeService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.BookingStatus, error) {
	if strings.TrimSpace(req.BookingID) == "" {
		return "", fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	status := domain.BookingStatus(strings.TrimSpace(req.Status))
	if status == "" {
		return "", fmt.Errorf("%w: status is required", ErrInvalidInput)
	}
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.PartsUsed != nil && utf8.RuneCountInString(*req.PartsUsed) > domain.MaxPartsUsedLength {
		return "", fmt.Errorf("%w: partsUsed exceeds %d characters", ErrInvalidInput, domain.MaxPartsUsedLength)
	}

	return status, nil
}
