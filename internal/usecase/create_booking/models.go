package create_booking

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модель запроса на создание бронирования
// Пустые значения означают, что поле не выбрано
type Request struct {
	Date          time.Time // Дата бронирования (без времени)
	ServiceID     string
	SlotTime      string // "HH:MM" или "HH:MM:SS"
	CustomerName  string
	CustomerPhone string
	Seq           uint64 // Номер запроса клиента для обновления доступности
}

// Confirmation данные для окна подтверждения
type Confirmation struct {
	Date        time.Time
	Slot        types.TimeString
	ServiceName string
	BookingRef  string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking      *domain.Booking
	Confirmation Confirmation
	// Availability свежий снимок слотов после записи, nil если обновить не удалось
	Availability *get_available_slots.Response
}
