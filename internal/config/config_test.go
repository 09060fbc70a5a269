package config_test

import (
	"testing"
	"time"

	"grainsync-console/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("missing backend url", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "")
		t.Setenv("JWT_SECRET", "secret")

		_, err := config.Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "BACKEND_URL")
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "http://erp.local")
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("defaults and overrides", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "http://erp.local/")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("DRAFT_TTL", "2h")
		t.Setenv("BACKEND_READ_RETRIES", "not-a-number")
		t.Setenv("PROTECTED_USERNAME", "root")

		cfg, err := config.Load()

		assert.NoError(t, err)
		assert.Equal(t, "http://erp.local", cfg.BackendURL)
		assert.Equal(t, 2*time.Hour, cfg.DraftTTL)
		assert.Equal(t, 2, cfg.BackendReadRetries)
		assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
		assert.Equal(t, "root", cfg.ProtectedUsername)
	})
}
