package sign_in

import "github.com/m04kA/barbershop-booking/internal/service/auth"

type AuthService interface {
	SignIn(email, password string) (*auth.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
