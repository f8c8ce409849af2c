package domain

import (
	"time"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a customer appointment
type Booking struct {
	ID          string // UUID, генерируется при отправке
	BookingDate time.Time
	SlotTime    types.TimeString
	ServiceID   string

	// Denormalized service data at submission time
	ServiceName string
	DurationMin int
	DurationMax int

	CustomerName  string
	CustomerPhone string // только цифры и '+'
	Status        BookingStatus
	BookingRef    string // код для клиента, не уникальный ключ

	CreatedAt time.Time
}

// IsActive returns true if the booking occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanTransitionTo reports whether an admin may move the booking to next.
// confirmed only from pending; cancelled and completed from pending or confirmed.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch next {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusCancelled, StatusCompleted:
		return b.Status == StatusPending || b.Status == StatusConfirmed
	default:
		return false
	}
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	for _, valid := range AllStatuses {
		if status == valid {
			return status, true
		}
	}
	return "", false
}

// BookingsFilter фильтр для выборки бронирований администратором
type BookingsFilter struct {
	Date  *time.Time // booking_date = Date
	After *time.Time // booking_date > After
}
