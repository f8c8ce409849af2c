package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/bookings"
)

const (
	msgInvalidMode   = "некорректный режим, ожидается today или upcoming"
	msgNotConfigured = "хранилище записей не подключено"
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

// Handle GET /api/v1/admin/bookings
// Query params: mode (today по умолчанию, upcoming)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")

	result, err := h.service.List(r.Context(), mode)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidMode):
			h.logger.Warn("GET /admin/bookings - Invalid mode: %q", mode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		case errors.Is(err, bookings.ErrNotConfigured):
			h.logger.Warn("GET /admin/bookings - Booking store is not configured")
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: mode=%q, error=%v", mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: mode=%s, count=%d", result.Mode, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
