package get_session

import (
	"net/http"
	"time"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/api/middleware"
)

// SessionResponse HTTP response model, Session = nil без активной сессии
type SessionResponse struct {
	Session *SessionInfo `json:"session"`
}

type SessionInfo struct {
	Email     string `json:"email"`
	ExpiresAt string `json:"expiresAt"`
}

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

// Handle GET /api/v1/auth/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	session := h.service.GetSession(middleware.BearerToken(r))
	if session == nil {
		handlers.RespondJSON(w, http.StatusOK, &SessionResponse{})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SessionResponse{
		Session: &SessionInfo{
			Email:     session.Email,
			ExpiresAt: session.ExpiresAt.Format(time.RFC3339),
		},
	})
}
