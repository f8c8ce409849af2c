package create_booking

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	availableSlots "github.com/m04kA/barbershop-booking/internal/api/handlers/get_available_slots"
	createBooking "github.com/m04kA/barbershop-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgDateRequired       = "выберите дату"
	msgDateOutOfRange     = "дата вне доступного для записи диапазона"
	msgServiceNotFound    = "выберите услугу"
	msgSlotRequired       = "выберите время"
	msgInvalidSlot        = "выбранное время недоступно в этот день"
	msgNameRequired       = "укажите имя"
	msgInvalidPhone       = "укажите корректный номер телефона"
	msgInvalidData        = "некорректные данные бронирования"
	msgSlotTaken          = "это время только что заняли, выберите другое"
	msgNotConfigured      = "онлайн-запись временно недоступна"

	msgSubmissionFailedFmt = "не удалось создать бронирование: %s"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, slot=%s", req.Date, req.SlotTime)
			handlers.RespondJSON(w, http.StatusConflict, &ConflictResponse{
				Code:         http.StatusConflict,
				Message:      msgSlotTaken,
				Availability: availableSlots.FromUseCaseResponse(conflict.Availability),
			})

		case errors.Is(err, createBooking.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, validationMessage(err))

		case errors.Is(err, createBooking.ErrNotConfigured):
			h.logger.Warn("POST /bookings - Booking store is not configured")
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		case errors.Is(err, createBooking.ErrSubmissionFailed):
			h.logger.Error("POST /bookings - Submission failed: date=%s, slot=%s, error=%v",
				req.Date, req.SlotTime, err)
			handlers.RespondError(w, http.StatusInternalServerError,
				fmt.Sprintf(msgSubmissionFailedFmt, submissionCause(err)))

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, slot=%s, error=%v",
				req.Date, req.SlotTime, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, ref=%s",
		result.Booking.ID, result.Confirmation.BookingRef)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, createBooking.ErrDateRequired):
		return msgDateRequired
	case errors.Is(err, createBooking.ErrDateOutOfRange):
		return msgDateOutOfRange
	case errors.Is(err, createBooking.ErrServiceNotFound):
		return msgServiceNotFound
	case errors.Is(err, createBooking.ErrSlotRequired):
		return msgSlotRequired
	case errors.Is(err, createBooking.ErrInvalidSlot):
		return msgInvalidSlot
	case errors.Is(err, createBooking.ErrNameRequired):
		return msgNameRequired
	case errors.Is(err, createBooking.ErrInvalidPhone):
		return msgInvalidPhone
	default:
		return msgInvalidData
	}
}

// submissionCause возвращает последнее звено цепочки ошибки без префиксов пакетов
func submissionCause(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	return msg
}
