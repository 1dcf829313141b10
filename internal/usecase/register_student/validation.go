package register_student

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/SaimAkramGill/bewanted/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest проверяет снапшот регистрации целиком.
// Любая ошибка здесь отменяет весь батч до обращения к хранилищу.
// Проверяется нормализованный снапшот: значения из одних пробелов
// эквивалентны пустым.
func validateRequest(req Request) error {
	student := req.Student.Normalized()

	if student.FirstName == "" || student.LastName == "" {
		return fmt.Errorf("%w: first name and last name are required", ErrValidation)
	}
	if student.Email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailPattern.MatchString(student.Email) {
		return fmt.Errorf("%w: invalid email %q", ErrValidation, student.Email)
	}
	if student.PhoneNumber == "" {
		return fmt.Errorf("%w: phone number is required", ErrValidation)
	}
	if student.FieldOfStudy == "" {
		return fmt.Errorf("%w: field of study is required", ErrValidation)
	}
	if student.Motivation == "" {
		return fmt.Errorf("%w: motivation is required", ErrValidation)
	}
	if len(student.Motivation) > domain.MaxMotivationLength {
		return fmt.Errorf("%w: motivation exceeds %d characters", ErrValidation, domain.MaxMotivationLength)
	}

	if len(req.Selections) == 0 {
		return ErrNoSelections
	}

	// Дубликаты внутри одного запроса отклоняем сразу: иначе первый элемент
	// забронируется, а второй упадёт на проверках занятости
	seenCompanies := make(map[int64]bool, len(req.Selections))
	seenSlots := make(map[string]bool, len(req.Selections))

	for i, sel := range req.Selections {
		if sel.CompanyID <= 0 {
			return fmt.Errorf("%w: selection %d: company id must be positive", ErrValidation, i)
		}
		if strings.TrimSpace(sel.TimeSlot) == "" {
			return fmt.Errorf("%w: selection %d: time slot is required", ErrValidation, i)
		}
		if seenCompanies[sel.CompanyID] {
			return fmt.Errorf("%w: selection %d: duplicate company %d in request", ErrValidation, i, sel.CompanyID)
		}
		if seenSlots[sel.TimeSlot] {
			return fmt.Errorf("%w: selection %d: duplicate time slot %q in request", ErrValidation, i, sel.TimeSlot)
		}
		seenCompanies[sel.CompanyID] = true
		seenSlots[sel.TimeSlot] = true
	}

	return nil
}
