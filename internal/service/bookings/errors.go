package bookings

import "errors"

var (
	// ErrNotConfigured возвращается, когда хранилище записей не подключено
	ErrNotConfigured = errors.New("booking store is not configured")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidMode возвращается при неизвестном режиме списка
	ErrInvalidMode = errors.New("invalid list mode")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTransition возвращается, когда переход статуса запрещен
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
