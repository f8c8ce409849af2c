package create_booking

import (
	"errors"

	"github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

var (
	// ErrNotConfigured возвращается, когда хранилище записей не подключено
	ErrNotConfigured = errors.New("create_booking: booking store is not configured")

	// ErrValidation общая ошибка проверки входных данных, оборачивает конкретную причину
	ErrValidation = errors.New("create_booking: validation failed")

	ErrDateRequired    = errors.New("date is required")
	ErrDateOutOfRange  = errors.New("date is out of bookable range")
	ErrServiceNotFound = errors.New("service not found")
	ErrSlotRequired    = errors.New("time slot is required")
	ErrInvalidSlot     = errors.New("time slot is not offered on this date")
	ErrNameRequired    = errors.New("customer name is required")
	ErrInvalidPhone    = errors.New("invalid phone number")

	// ErrSlotTaken возвращается, когда слот успели занять между выбором и отправкой
	ErrSlotTaken = errors.New("create_booking: slot already taken")

	// ErrSubmissionFailed возвращается при прочих ошибках сохранения, повтор не выполняется
	ErrSubmissionFailed = errors.New("create_booking: submission failed")
)

// ConflictError конфликт уникальности (дата, время)
// Availability содержит свежий снимок слотов или nil, если обновить его не удалось
type ConflictError struct {
	Availability *get_available_slots.Response
}

func (e *ConflictError) Error() string {
	return ErrSlotTaken.Error()
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotTaken
}
