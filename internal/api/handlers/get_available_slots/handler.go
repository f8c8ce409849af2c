package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "дата обязательна"
	msgInvalidParams  = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и seq>=0"
	msgDateOutOfRange = "дата вне доступного для записи диапазона"
	msgNotConfigured  = "онлайн-запись временно недоступна"
	msgFetchFailed    = "не удалось загрузить доступность, попробуйте позже или позвоните нам"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: date (required, YYYY-MM-DD), seq (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, r.URL.Query().Get("seq"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrNotConfigured):
			h.logger.Warn("GET /available-slots - Booking store is not configured")
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrDateOutOfRange):
			h.logger.Warn("GET /available-slots - Date out of range: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, getAvailableSlots.ErrFetchFailed):
			h.logger.Error("GET /available-slots - Fetch failed: date=%s, error=%v", dateStr, err)
			handlers.RespondError(w, http.StatusBadGateway, msgFetchFailed)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved: date=%s, seq=%d, available=%d/%d",
		dateStr, result.Seq, response.AvailableCount, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
