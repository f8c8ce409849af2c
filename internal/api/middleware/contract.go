package middleware

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/service/auth"
)

// SessionProvider интерфейс проверки сессий администратора
type SessionProvider interface {
	GetSession(token string) *auth.Session
}

// Metrics интерфейс учета HTTP запросов
type Metrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
