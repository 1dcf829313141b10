package register_student

import "errors"

var (
	// ErrValidation возвращается при некорректном снапшоте регистрации.
	// Валидационная ошибка отменяет весь батч: ни одна запись не создаётся.
	ErrValidation = errors.New("register_student.usecase: validation failed")

	// ErrNoSelections возвращается, когда в запросе нет ни одного слота
	ErrNoSelections = errors.New("register_student.usecase: no slot selections")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("register_student.usecase: internal error")
)
