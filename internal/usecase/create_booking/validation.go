package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// normalizeRequest обрезает пробелы во всех полях
func normalizeRequest(req *Request) {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.BikeNumber = strings.TrimSpace(req.BikeNumber)
	req.Email = strings.TrimSpace(req.Email)
	req.Service = strings.TrimSpace(req.Service)
	req.Date = strings.TrimSpace(req.Date)
	req.TimeSlot = strings.TrimSpace(req.TimeSlot)
	req.Location = strings.TrimSpace(req.Location)
	req.Mechanic = strings.TrimSpace(req.Mechanic)
	req.PaymentType = strings.ToLower(strings.TrimSpace(req.PaymentType))
}

// validateRequest валидирует входные данные запроса
// Ошибка оборачивает ErrInvalidInput и конкретную причину.
func validateRequest(req *Request, slots SlotCatalog) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		// Сначала сообщаем о пропущенных полях, затем о прочих нарушениях
		var missing []string
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				missing = append(missing, fe.Field())
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrMissingFields, strings.Join(missing, ", "))
		}

		fe := fieldErrs[0]
		switch fe.Tag() {
		case "email":
			return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrInvalidEmail, fe.Value())
		case "oneof":
			return fmt.Errorf("%w: %w: %v", ErrInvalidInput, ErrInvalidPaymentType, fe.Value())
		case "excludesall":
			return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrInvalidSeparator, fe.Field())
		case "max":
			return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrFieldTooLong, fe.Field())
		default:
			return fmt.Errorf("%w: %s failed on %s", ErrInvalidInput, fe.Field(), fe.Tag())
		}
	}

	if !slots.IsValidTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: %w: %s", ErrInvalidInput, ErrInvalidTimeSlot, req.TimeSlot)
	}

	return nil
}
