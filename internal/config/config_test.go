package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Default Values", func(t *testing.T) {
		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "local", cfg.AppEnv)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "sqlite://gamblecodez.db", cfg.DatabaseURL)
		assert.Equal(t, "admin", cfg.AdminUsername)
	})

	t.Run("Environment Variables", func(t *testing.T) {
		os.Setenv("PORT", "9999")
		os.Setenv("ADMIN_USERNAME", "operator")
		defer os.Unsetenv("PORT")
		defer os.Unsetenv("ADMIN_USERNAME")

		cfg, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "9999", cfg.Port)
		assert.Equal(t, "operator", cfg.AdminUsername)
	})
}
