package get_available_slots

import "errors"

var (
	// ErrNotConfigured возвращается, когда хранилище записей не подключено
	ErrNotConfigured = errors.New("booking store is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDateOutOfRange возвращается для даты в прошлом или дальше горизонта записи
	ErrDateOutOfRange = errors.New("date is out of bookable range")

	// ErrFetchFailed возвращается, когда не удалось получить занятые слоты
	// Это не то же самое, что "нет свободных слотов"
	ErrFetchFailed = errors.New("failed to load availability")
)
