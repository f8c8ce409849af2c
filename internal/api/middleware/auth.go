package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/auth"
)

const (
	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "сессия недействительна или истекла"

	bearerPrefix = "Bearer "
)

type contextKey string

const sessionKey contextKey = "admin_session"

// Auth пропускает только запросы с действующей сессией администратора
func Auth(sessions SessionProvider, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session := sessions.GetSession(token)
			if session == nil {
				logger.Warn("%s %s - Invalid or expired session", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession возвращает сессию администратора из контекста
func GetSession(ctx context.Context) (*auth.Session, bool) {
	session, ok := ctx.Value(sessionKey).(*auth.Session)
	return session, ok
}

// BearerToken извлекает токен из заголовка Authorization
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
