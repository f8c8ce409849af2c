package sign_in

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "email и пароль обязательны"
	msgInvalidCredentials = "неверный email или пароль"
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

// Handle POST /api/v1/auth/sign-in
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/sign-in - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.Email == "" || req.Password == "" {
		h.logger.Warn("POST /auth/sign-in - Missing credentials")
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	session, err := h.service.SignIn(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/sign-in - Failed to sign in: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/sign-in - Signed in: email=%s", session.Email)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}
