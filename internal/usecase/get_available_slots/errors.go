package get_available_slots

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("get_available_slots.usecase: company not found")

	// ErrBookingUnavailable возвращается, когда запись к компании закрыта.
	// Сетка слотов в этом случае не возвращается вовсе.
	ErrBookingUnavailable = errors.New("get_available_slots.usecase: booking disabled for company")

	// ErrInvalidEmail возвращается при некорректном email студента
	ErrInvalidEmail = errors.New("get_available_slots.usecase: invalid student email")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("get_available_slots.usecase: internal error")
)
