package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата в пределах [сегодня, сегодня+maxDaysAhead]
// maxDaysAhead = 0 снимает верхнее ограничение
func validateDate(requestDate, now time.Time, maxDaysAhead int) error {
	date := dateOnly(requestDate)
	today := dateOnly(now)

	if date.Before(today) {
		return fmt.Errorf("%w: %s is in the past", ErrDateOutOfRange, date.Format(domain.DateFormat))
	}

	if maxDaysAhead == 0 {
		return nil
	}

	if date.After(today.AddDate(0, 0, maxDaysAhead)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateOutOfRange, maxDaysAhead)
	}

	return nil
}
