package sign_out

import (
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/sign-out
// Повторный выход и неизвестный токен не считаются ошибкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if token := middleware.BearerToken(r); token != "" {
		h.service.SignOut(token)
	}
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
