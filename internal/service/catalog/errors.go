package catalog

import "errors"

var (
	// ErrNotConfigured возвращается при изменении каталога без подключенного хранилища
	ErrNotConfigured = errors.New("service store is not configured")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceAlreadyExists возвращается при попытке создать услугу с существующим ID
	ErrServiceAlreadyExists = errors.New("service already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
