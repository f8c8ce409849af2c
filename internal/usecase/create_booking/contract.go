package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

// BookingRepository интерфейс хранилища записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ServiceCatalog интерфейс каталога услуг
type ServiceCatalog interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// AvailabilityResolver интерфейс получения свежего снимка доступности
type AvailabilityResolver interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Metrics интерфейс учета исходов бронирования
type Metrics interface {
	ObserveBooking(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
