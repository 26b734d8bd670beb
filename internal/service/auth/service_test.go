package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testSecret = []byte("test-secret-key")

func newTestService(t *testing.T, password string) *Service {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return NewService("admin", string(hash), testSecret, time.Hour, nopLogger{})
}

func TestService_Login(t *testing.T) {
	svc := newTestService(t, "correct horse")

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "admin", "correct horse")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "admin", "battery staple")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "root", "correct horse")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateToken("admin", testSecret, time.Hour)
		require.NoError(t, err)

		claims, err := ValidateToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := GenerateToken("admin", testSecret, time.Hour)
		require.NoError(t, err)

		_, err = ValidateToken(token, []byte("other-secret"))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateToken("admin", testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateToken(token, testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateToken("not.a.jwt", testSecret)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
