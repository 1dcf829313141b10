package notifier

import "errors"

var (
	// ErrUnavailable возвращается, когда сервис уведомлений недоступен
	ErrUnavailable = errors.New("notifier.client: notification service unavailable")

	// ErrBadRequest возвращается, когда сервис уведомлений отклонил событие
	ErrBadRequest = errors.New("notifier.client: notification rejected")

	// ErrInternal возвращается при внутренней ошибке сервиса уведомлений
	ErrInternal = errors.New("notifier.client: notification service internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервиса
	ErrInvalidResponse = errors.New("notifier.client: invalid response")
)
