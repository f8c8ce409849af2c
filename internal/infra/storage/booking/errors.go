package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStatusChanged возвращается, когда условное обновление статуса не затронуло ни одной строки
	ErrStatusChanged = errors.New("booking.repository: booking status changed concurrently")

	// ErrSlotTaken возвращается при нарушении уникальности активного бронирования на дату и время
	ErrSlotTaken = errors.New("booking.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
