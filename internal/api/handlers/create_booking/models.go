package create_booking

import (
	"time"

	availableSlots "github.com/m04kA/barbershop-booking/internal/api/handlers/get_available_slots"
	"github.com/m04kA/barbershop-booking/internal/domain"
	createBooking "github.com/m04kA/barbershop-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date          string `json:"date"`     // "2026-03-11"
	ServiceID     string `json:"serviceId"`
	SlotTime      string `json:"slotTime"` // "14:30" или "14:30:00"
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Seq           uint64 `json:"seq,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string `json:"id"`
	BookingRef  string `json:"bookingRef"`
	Date        string `json:"date"`
	SlotTime    string `json:"slotTime"`
	SlotLabel   string `json:"slotLabel"`
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	DurationMin int    `json:"durationMin"`
	DurationMax int    `json:"durationMax"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// CreateBookingResponse ответ на успешную запись
type CreateBookingResponse struct {
	Booking      BookingResponse                        `json:"booking"`
	Availability *availableSlots.AvailableSlotsResponse `json:"availability,omitempty"`
}

// ConflictResponse ответ при занятом слоте
type ConflictResponse struct {
	Code         int                                    `json:"code"`
	Message      string                                 `json:"message"`
	Availability *availableSlots.AvailableSlotsResponse `json:"availability,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Пустая дата передается как нулевая, ее отсутствие проверяет use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	return &createBooking.Request{
		Date:          date,
		ServiceID:     r.ServiceID,
		SlotTime:      r.SlotTime,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Seq:           r.Seq,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	b := resp.Booking
	return &CreateBookingResponse{
		Booking: BookingResponse{
			ID:          b.ID,
			BookingRef:  resp.Confirmation.BookingRef,
			Date:        resp.Confirmation.Date.Format(domain.DateFormat),
			SlotTime:    resp.Confirmation.Slot.String(),
			SlotLabel:   resp.Confirmation.Slot.Label(),
			ServiceID:   b.ServiceID,
			ServiceName: resp.Confirmation.ServiceName,
			DurationMin: b.DurationMin,
			DurationMax: b.DurationMax,
			Status:      string(b.Status),
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		},
		Availability: availableSlots.FromUseCaseResponse(resp.Availability),
	}
}
