package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest проверяет параметры запроса.
// Пустой email допустим (анонимный просмотр сетки).
func validateRequest(req Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: company id must be positive", ErrCompanyNotFound)
	}

	if req.StudentEmail != "" && !strings.Contains(req.StudentEmail, "@") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, req.StudentEmail)
	}

	return nil
}
