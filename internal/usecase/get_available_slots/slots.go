package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// GenerateSlots генерирует все времена начала слотов на дату
// Слоты идут от открытия с шагом interval, слот включается только если slot+interval <= close
// Функция чистая: одинаковые аргументы дают одинаковый результат
func GenerateSlots(date time.Time, hours domain.BusinessHours, interval int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if interval <= 0 {
		return slots
	}

	day := hours.For(date)
	open, closeAt := day.Open.Minutes(), day.Close.Minutes()
	if open < 0 || closeAt < 0 || open >= closeAt {
		return slots
	}

	for t := open; t+interval <= closeAt; t += interval {
		slot, err := types.FromMinutes(t)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// markAvailability помечает слот недоступным, если время его начала есть среди занятых
// Порядок слотов сохраняется
func markAvailability(slots []types.TimeString, booked []types.TimeString) []domain.Slot {
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	result := make([]domain.Slot, len(slots))
	for i, slot := range slots {
		_, isTaken := taken[slot]
		result[i] = domain.Slot{
			StartTime: slot,
			Available: !isTaken,
		}
	}

	return result
}

// hoursHint подпись с часами записи для выбранного типа дня
func hoursHint(dayType domain.DayType, hours domain.OpeningHours) string {
	label := "Booking hours (weekdays)"
	if dayType == domain.DayTypeWeekend {
		label = "Booking hours (weekends)"
	}
	return fmt.Sprintf("%s: %s-%s", label, hours.Open.Label(), hours.Close.Label())
}

// dateOnly отбрасывает время и временную зону, оставляя календарную дату
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
