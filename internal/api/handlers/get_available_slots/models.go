package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	DayType        string          `json:"dayType"`
	Open           string          `json:"open"`
	Close          string          `json:"close"`
	HoursHint      string          `json:"hoursHint"`
	Seq            uint64          `json:"seq"`
	AvailableCount int             `json:"availableCount"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"` // "14:30:00"
	Label     string `json:"label"`     // "14:30"
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	if resp == nil {
		return nil
	}

	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			Label:     slot.StartTime.Label(),
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		DayType:        string(resp.DayType),
		Open:           resp.Hours.Open.Label(),
		Close:          resp.Hours.Close.Label(),
		HoursHint:      resp.HoursHint,
		Seq:            resp.Seq,
		AvailableCount: domain.CountAvailable(resp.Slots),
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, seqStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{Date: date}
	if seqStr != "" {
		seq, err := strconv.ParseUint(seqStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Seq = seq
	}
	return req, nil
}
