package session_test

import (
	"context"
	"testing"
	"time"

	"grainsync-console/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const secret = "test-secret"

func sign(t *testing.T, claims jwt.MapClaims, key string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(key))
	assert.NoError(t, err)
	return s
}

func TestParse(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		tok := sign(t, jwt.MapClaims{
			"role":     "finance_manager",
			"username": "alice",
			"exp":      time.Now().Add(time.Hour).Unix(),
		}, secret)

		s, err := session.Parse(tok, secret)

		assert.NoError(t, err)
		assert.Equal(t, "finance_manager", s.Role)
		assert.Equal(t, "alice", s.Username)
		assert.False(t, s.IsAdmin())
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := session.Parse("  ", secret)
		assert.ErrorIs(t, err, session.ErrMissingToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := sign(t, jwt.MapClaims{"role": "admin", "username": "root"}, "other")

		_, err := session.Parse(tok, secret)

		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok := sign(t, jwt.MapClaims{
			"role":     "admin",
			"username": "root",
			"exp":      time.Now().Add(-time.Minute).Unix(),
		}, secret)

		_, err := session.Parse(tok, secret)

		assert.ErrorIs(t, err, session.ErrTokenExpired)
	})

	t.Run("missing username", func(t *testing.T) {
		tok := sign(t, jwt.MapClaims{"role": "admin"}, secret)

		_, err := session.Parse(tok, secret)

		assert.ErrorIs(t, err, session.ErrMissingClaims)
	})
}

func TestContext(t *testing.T) {
	_, ok := session.From(context.Background())
	assert.False(t, ok)

	ctx := session.With(context.Background(), session.Session{Role: "admin", Username: "root"})
	s, ok := session.From(ctx)

	assert.True(t, ok)
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "root", s.Username)
}
