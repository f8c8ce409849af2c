package sign_in

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/service/auth"
)

// SignInRequest HTTP request model
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expiresAt"`
}

// FromSession конвертирует сессию в HTTP response
func FromSession(s *auth.Session) *SessionResponse {
	return &SessionResponse{
		Token:     s.Token,
		Email:     s.Email,
		ExpiresAt: s.ExpiresAt.Format(time.RFC3339),
	}
}
