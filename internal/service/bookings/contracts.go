package bookings

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
