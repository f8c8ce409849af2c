package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// ErrInvalidHours возвращается при некорректных рабочих часах
var ErrInvalidHours = errors.New("invalid business hours")

// DayType классификация даты по рабочему расписанию
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// DayTypeOf returns weekend for Saturday and Sunday, weekday otherwise
func DayTypeOf(date time.Time) DayType {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return DayTypeWeekend
	default:
		return DayTypeWeekday
	}
}

// OpeningHours интервал работы в течение дня
type OpeningHours struct {
	Open  types.TimeString
	Close types.TimeString
}

// Validate checks that both bounds parse and open < close
func (h OpeningHours) Validate() error {
	if err := h.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open: %v", ErrInvalidHours, err)
	}
	if err := h.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close: %v", ErrInvalidHours, err)
	}
	if !h.Open.IsBefore(h.Close) {
		return fmt.Errorf("%w: open %s must be before close %s", ErrInvalidHours, h.Open, h.Close)
	}
	return nil
}

// BusinessHours рабочие часы по типу дня
type BusinessHours struct {
	Weekday OpeningHours
	Weekend OpeningHours
}

// For returns the opening hours that apply to date
func (h BusinessHours) For(date time.Time) OpeningHours {
	if DayTypeOf(date) == DayTypeWeekend {
		return h.Weekend
	}
	return h.Weekday
}

// Validate checks both day types
func (h BusinessHours) Validate() error {
	if err := h.Weekday.Validate(); err != nil {
		return fmt.Errorf("weekday: %w", err)
	}
	if err := h.Weekend.Validate(); err != nil {
		return fmt.Errorf("weekend: %w", err)
	}
	return nil
}
