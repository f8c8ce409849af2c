package bookingform

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/usecase/create_booking"
	"github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

// AvailabilityResolver интерфейс получения доступности слотов
type AvailabilityResolver interface {
	Execute(ctx context.Context, req *get_available_slots.Request) (*get_available_slots.Response, error)
}

// BookingSubmitter интерфейс отправки бронирования
type BookingSubmitter interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}
