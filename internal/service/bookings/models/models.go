package models

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// ListMode режим списка бронирований администратора
type ListMode string

const (
	ModeToday    ListMode = "today"
	ModeUpcoming ListMode = "upcoming"
)

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            string    `json:"id"`
	BookingRef    string    `json:"bookingRef"`
	BookingDate   string    `json:"bookingDate"` // "2026-03-10"
	SlotTime      string    `json:"slotTime"`    // "14:30:00"
	ServiceID     string    `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	DurationMin   int       `json:"durationMin"`
	DurationMax   int       `json:"durationMax"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Mode     ListMode          `json:"mode"`
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID,
		BookingRef:    b.BookingRef,
		BookingDate:   b.BookingDate.Format(domain.DateFormat),
		SlotTime:      b.SlotTime.String(),
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		DurationMin:   b.DurationMin,
		DurationMax:   b.DurationMax,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(mode ListMode, bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Mode:     mode,
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ParseListMode конвертирует строку в ListMode, пустая строка означает today
func ParseListMode(mode string) (ListMode, bool) {
	switch ListMode(mode) {
	case "", ModeToday:
		return ModeToday, true
	case ModeUpcoming:
		return ModeUpcoming, true
	default:
		return "", false
	}
}
