package get_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/catalog"
)

const msgNotFound = "услуга не найдена"

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

// Handle GET /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	result, err := h.service.GetByID(r.Context(), serviceID)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			h.logger.Warn("GET /services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /services/{id} - Failed to get service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
