package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
