package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest проверяет, что все три параметра заданы
func validateRequest(req *Request) error {
	req.Date = strings.TrimSpace(req.Date)
	req.Location = strings.TrimSpace(req.Location)
	req.Mechanic = strings.TrimSpace(req.Mechanic)

	var missing []string
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Location == "" {
		missing = append(missing, "location")
	}
	if req.Mechanic == "" {
		missing = append(missing, "mechanic")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
