package auth

import "time"

// Event тип изменения сессии
type Event string

const (
	EventSignedIn  Event = "SIGNED_IN"
	EventSignedOut Event = "SIGNED_OUT"
	EventExpired   Event = "EXPIRED"
)

// Session сессия администратора
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Account учетная запись администратора
type Account struct {
	Email        string
	PasswordHash string // bcrypt
}

// Listener получает уведомления об изменении сессий
type Listener func(event Event, session *Session)
