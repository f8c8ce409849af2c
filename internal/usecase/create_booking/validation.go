package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// NormalizePhone оставляет в номере только цифры и '+'
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '+' {
			return r
		}
		return -1
	}, strings.TrimSpace(phone))
}

func validationError(cause error, format string, v ...interface{}) error {
	msg := fmt.Sprintf(format, v...)
	if msg == "" {
		return fmt.Errorf("%w: %w", ErrValidation, cause)
	}
	return fmt.Errorf("%w: %w: %s", ErrValidation, cause, msg)
}

// validateDate проверяет, что дата выбрана и попадает в [сегодня, сегодня+maxDaysAhead]
func validateDate(date, now time.Time, maxDaysAhead int) error {
	if date.IsZero() {
		return validationError(ErrDateRequired, "")
	}

	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	if day.Before(today) {
		return validationError(ErrDateOutOfRange, "%s is in the past", day.Format(domain.DateFormat))
	}
	if maxDaysAhead > 0 && day.After(today.AddDate(0, 0, maxDaysAhead)) {
		return validationError(ErrDateOutOfRange, "can only book %d days in advance", maxDaysAhead)
	}
	return nil
}

// validateSlot проверяет, что слот выбран и входит в сетку слотов даты
func validateSlot(raw string, date time.Time, hours domain.BusinessHours, interval int) (types.TimeString, error) {
	if strings.TrimSpace(raw) == "" {
		return "", validationError(ErrSlotRequired, "")
	}

	slot, err := types.NewTimeStringFromString(strings.TrimSpace(raw))
	if err != nil {
		return "", validationError(ErrInvalidSlot, "%v", err)
	}

	for _, candidate := range get_available_slots.GenerateSlots(date, hours, interval) {
		if candidate == slot {
			return slot, nil
		}
	}
	return "", validationError(ErrInvalidSlot, "%s", slot.Label())
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", validationError(ErrNameRequired, "")
	}
	return trimmed, nil
}

func validatePhone(phone string) (string, error) {
	normalized := NormalizePhone(phone)
	if len(normalized) < domain.MinPhoneLength {
		return "", validationError(ErrInvalidPhone, "at least %d digits required", domain.MinPhoneLength)
	}
	return normalized, nil
}
