package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const (
	// Layout формат хранения времени в БД и на проводе ("HH:MM:SS")
	Layout = "15:04:05"
	// ShortLayout формат ввода и отображения ("HH:MM")
	ShortLayout = "15:04"

	minutesPerDay = 24 * 60
)

// TimeString время суток без даты в формате "HH:MM:SS"
// Пустая строка означает отсутствие значения
type TimeString string

// NewTimeString создает TimeString из time.Time (дата и секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d:00", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит время в формате "HH:MM" или "HH:MM:SS"
func NewTimeStringFromString(s string) (TimeString, error) {
	for _, layout := range []string{Layout, ShortLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeString(t.Format(Layout)), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
}

// FromMinutes создает TimeString из количества минут от начала суток
func FromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes out of day range", ErrInvalidTimeString, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d:00", minutes/60, minutes%60)), nil
}

// Minutes возвращает количество минут от начала суток
// Для некорректного значения возвращает -1
func (t TimeString) Minutes() int {
	parsed, err := time.Parse(Layout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes возвращает время, сдвинутое на n минут
// Переход через полночь считается ошибкой
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	return FromMinutes(t.Minutes() + n)
}

// IsBefore возвращает true, если t раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM:SS"
func (t TimeString) Validate() error {
	if _, err := time.Parse(Layout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// String возвращает время в формате "HH:MM:SS"
func (t TimeString) String() string {
	return string(t)
}

// Label возвращает время в формате "HH:MM" для отображения
func (t TimeString) Label() string {
	parsed, err := time.Parse(Layout, string(t))
	if err != nil {
		return string(t)
	}
	return parsed.Format(ShortLayout)
}

// Scan реализует sql.Scanner
// lib/pq отдает колонку TIME как time.Time, некоторые драйверы - как строку
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = TimeString(v.Format(Layout))
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
