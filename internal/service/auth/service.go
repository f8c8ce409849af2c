package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// tokenBytes длина случайной части токена
const tokenBytes = 32

// unknownAccountPassword пароль заглушки, с которой сравнивается ввод для неизвестного email
const unknownAccountPassword = "unknown-account-placeholder"

// Service провайдер аутентификации администраторов
// Сессии хранятся в памяти процесса
type Service struct {
	accounts     map[string]string // email -> bcrypt hash
	unknownHash  []byte
	compare      func(hash, password []byte) error
	ttl          time.Duration
	timeProvider TimeProvider
	random       io.Reader
	logger       Logger

	mu        sync.RWMutex
	sessions  map[string]*Session
	listeners map[int]Listener
	nextID    int
}

// NewService создает провайдер аутентификации
func NewService(accounts []Account, ttl time.Duration, timeProvider TimeProvider, logger Logger) *Service {
	byEmail := make(map[string]string, len(accounts))
	cost := bcrypt.DefaultCost
	for _, acc := range accounts {
		byEmail[normalizeEmail(acc.Email)] = acc.PasswordHash
		if c, err := bcrypt.Cost([]byte(acc.PasswordHash)); err == nil {
			cost = c
		}
	}

	// Заглушка той же стоимости, что и у учетных записей: проверка неизвестного email занимает столько же времени
	unknownHash, err := bcrypt.GenerateFromPassword([]byte(unknownAccountPassword), cost)
	if err != nil {
		logger.Error("NewService: failed to generate placeholder hash: %v", err)
	}

	return &Service{
		accounts:     byEmail,
		unknownHash:  unknownHash,
		compare:      bcrypt.CompareHashAndPassword,
		ttl:          ttl,
		timeProvider: timeProvider,
		random:       rand.Reader,
		logger:       logger,
		sessions:     make(map[string]*Session),
		listeners:    make(map[int]Listener),
	}
}

// SignIn проверяет учетные данные и выдает новую сессию
func (s *Service) SignIn(email, password string) (*Session, error) {
	email = normalizeEmail(email)

	hash, ok := s.accounts[email]
	if !ok {
		_ = s.compare(s.unknownHash, []byte(password))
		s.logger.Warn("SignIn: unknown account %q", email)
		return nil, ErrInvalidCredentials
	}
	if err := s.compare([]byte(hash), []byte(password)); err != nil {
		s.logger.Warn("SignIn: wrong password for %q", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.newToken()
	if err != nil {
		s.logger.Error("SignIn: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	session := &Session{
		Token:     token,
		Email:     email,
		ExpiresAt: s.timeProvider.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	s.logger.Info("SignIn: %s signed in, expires at %s", email, session.ExpiresAt.Format(time.RFC3339))
	s.notify(EventSignedIn, session)

	copied := *session
	return &copied, nil
}

// SignOut завершает сессию. Неизвестный токен игнорируется
func (s *Service) SignOut(token string) {
	s.mu.Lock()
	session, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if !ok {
		return
	}
	s.logger.Info("SignOut: %s signed out", session.Email)
	s.notify(EventSignedOut, session)
}

// GetSession возвращает активную сессию или nil для неизвестного и просроченного токена
func (s *Service) GetSession(token string) *Session {
	if token == "" {
		return nil
	}

	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	if !s.timeProvider.Now().Before(session.ExpiresAt) {
		s.expire(token)
		return nil
	}

	copied := *session
	return &copied
}

// OnSessionChange подписывает listener на изменения сессий
// Возвращаемая функция отменяет подписку
func (s *Service) OnSessionChange(listener Listener) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// PurgeExpired удаляет просроченные сессии и возвращает их количество
func (s *Service) PurgeExpired() int {
	now := s.timeProvider.Now()

	s.mu.RLock()
	expired := make([]string, 0)
	for token, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			expired = append(expired, token)
		}
	}
	s.mu.RUnlock()

	purged := 0
	for _, token := range expired {
		if s.expire(token) {
			purged++
		}
	}
	return purged
}

func (s *Service) expire(token string) bool {
	s.mu.Lock()
	session, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if !ok {
		return false
	}
	s.logger.Info("session of %s expired", session.Email)
	s.notify(EventExpired, session)
	return true
}

// notify вызывает подписчиков вне блокировки
func (s *Service) notify(event Event, session *Session) {
	s.mu.RLock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		copied := *session
		l(event, &copied)
	}
}

func (s *Service) newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
