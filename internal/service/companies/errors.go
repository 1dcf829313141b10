package companies

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена
	ErrCompanyNotFound = errors.New("companies.service: company not found")

	// ErrCompanyExists возвращается при создании компании с занятым именем
	ErrCompanyExists = errors.New("companies.service: company already exists")

	// ErrInvalidCapacity возвращается при недопустимой ёмкости слота
	ErrInvalidCapacity = errors.New("companies.service: invalid capacity per slot")

	// ErrInvalidInterviewUnit возвращается при неизвестном типе собеседования
	ErrInvalidInterviewUnit = errors.New("companies.service: invalid interview unit")

	// ErrEmptyUpdate возвращается, когда в запросе на обновление нет ни одного поля
	ErrEmptyUpdate = errors.New("companies.service: empty config update")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("companies.service: internal error")
)
