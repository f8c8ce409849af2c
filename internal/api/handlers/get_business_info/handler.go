package get_business_info

import (
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

// Handler отдает статичные данные о заведении
type Handler struct {
	info *BusinessInfoResponse
}

func NewHandler(info *BusinessInfoResponse) *Handler {
	return &Handler{info: info}
}

// Handle GET /api/v1/business
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.info)
}
