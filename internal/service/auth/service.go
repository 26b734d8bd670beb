package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service сервис аутентификации администратора.
// Админ один, его логин и bcrypt-хеш пароля задаются конфигурацией.
type Service struct {
	username     string
	passwordHash []byte
	secret       []byte
	tokenTTL     time.Duration
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(username, passwordHash string, secret []byte, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		username:     username,
		passwordHash: []byte(passwordHash),
		secret:       secret,
		tokenTTL:     tokenTTL,
		logger:       logger,
	}
}

// Login проверяет учетные данные и возвращает подписанный JWT токен.
// Неверный логин и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		s.logger.Warn("Login: unknown username %q", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		s.logger.Warn("Login: password mismatch for username %q", username)
		return "", ErrInvalidCredentials
	}

	token, err := GenerateToken(username, s.secret, s.tokenTTL)
	if err != nil {
		s.logger.Error("Login: failed to generate token: %v", err)
		return "", ErrInternal
	}

	s.logger.Info("Login: issued token for %q", username)
	return token, nil
}

// Validate проверяет токен и возвращает его claims
func (s *Service) Validate(tokenString string) (*Claims, error) {
	return ValidateToken(tokenString, s.secret)
}
