package get_available_slots

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Календарная дата (время игнорируется)
	Seq  uint64    // Номер запроса клиента, возвращается без изменений
}

// Response модель ответа со списком слотов
type Response struct {
	Date      time.Time
	DayType   domain.DayType
	Hours     domain.OpeningHours
	HoursHint string
	Seq       uint64
	Slots     []domain.Slot // В хронологическом порядке, занятые помечены Available=false
}
