package update_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/catalog"
	"github.com/m04kA/barbershop-booking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные услуги"
	msgNotFound           = "услуга не найдена"
	msgNotConfigured      = "хранилище услуг не подключено"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/services/{id} - Service not found: id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/services/{id} - Invalid data: id=%s, error=%v", serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, catalog.ErrNotConfigured):
			h.logger.Warn("PUT /admin/services/{id} - Service store is not configured")
			handlers.RespondServiceUnavailable(w, msgNotConfigured)

		default:
			h.logger.Error("PUT /admin/services/{id} - Failed to update service: id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/services/{id} - Service updated: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
