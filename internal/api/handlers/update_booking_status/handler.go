package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
	"github.com/m04kA/barbershop-booking/internal/service/bookings"
	"github.com/m04kA/barbershop-booking/internal/service/bookings/models"
)

const (
	msgMissingBookingID   = "отсутствует ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус, ожидается confirmed, cancelled или completed"
	msgNotFound           = "бронирование не найдено"
	msgInvalidTransition  = "переход в этот статус недоступен"
	msgNotConfigured      = "хранилище записей не подключено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]
	if bookingID == "" {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Missing booking ID")
		handlers.RespondBadRequest(w, msgMissingBookingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	admin := "unknown"
	if session, ok := middleware.GetSession(r.Context()); ok {
		admin = session.Email
	}

	result, err := h.service.UpdateStatus(r.Context(), bookingID, &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Invalid status: booking_id=%s, status=%q", bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Transition not allowed: booking_id=%s, %v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, bookings.ErrNotConfigured):
			h.logger.Warn("PATCH /admin/bookings/{id}/status - Booking store is not configured")
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/status - Failed to update status: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/status - Status updated: booking_id=%s, status=%s, by=%s",
		bookingID, result.Status, admin)
	handlers.RespondJSON(w, http.StatusOK, result)
}
