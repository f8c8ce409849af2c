package get_session

import "github.com/m04kA/barbershop-booking/internal/service/auth"

type AuthService interface {
	GetSession(token string) *auth.Session
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
