package bookingform

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// MessageKind тип статусного сообщения формы
type MessageKind string

const (
	MessageNone    MessageKind = ""
	MessageInfo    MessageKind = "info"
	MessageError   MessageKind = "error"
	MessageSuccess MessageKind = "success"
)

const (
	MsgSelectDate       = "Please select a date."
	MsgDateOutOfRange   = "Please select a date within the booking window."
	MsgSelectService    = "Please select a service."
	MsgSelectSlot       = "Please select a time slot."
	MsgEnterName        = "Please enter your name."
	MsgInvalidPhone     = "Please enter a valid phone number."
	MsgSlotTaken        = "That slot was just booked. Please choose another time."
	MsgBookingSent      = "Booking request sent. We will confirm or cancel by WhatsApp/phone."
	MsgLoadFailed       = "Failed to load availability. Please try again or use Call/WhatsApp."
	MsgNoSlots          = "No slots available for this date."
	MsgNotConfigured    = "Booking is not available until the booking store is configured."
	MsgBookingFailedFmt = "Booking failed: %s"
)

// Message статусное сообщение под формой
type Message struct {
	Kind MessageKind
	Text string
}

// State снимок состояния формы
type State struct {
	Date       time.Time
	ServiceID  string
	Slot       types.TimeString
	Name       string
	Phone      string
	Seq        uint64
	Slots      []domain.Slot
	HoursHint  string
	Message    Message
	Submitting bool
}
