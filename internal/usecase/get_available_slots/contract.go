package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// BookingRepository интерфейс хранилища записей
type BookingRepository interface {
	// GetBookedSlots возвращает времена начала активных бронирований на дату ("YYYY-MM-DD")
	GetBookedSlots(ctx context.Context, date string) ([]types.TimeString, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс учета запросов доступности
type Metrics interface {
	ObserveAvailabilityFetch(ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени в заданной временной зоне
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
