package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseConfig() *Config {
	return &Config{
		Port:      "8420",
		JWTSecret: "a-perfectly-reasonable-32-char-secret!",
		DBDriver:  "sqlite",
		Env:       "development",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, baseConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := baseConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unsupported driver", func(t *testing.T) {
		cfg := baseConfig()
		cfg.DBDriver = "mysql"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects default secret", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects short secret", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("production rejects weak postgres password", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Env = "production"
		cfg.DBDriver = "postgres"
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})
}

func TestIsProduction(t *testing.T) {
	for env, want := range map[string]bool{
		"production":  true,
		"prod":        true,
		"development": false,
		"test":        false,
		"":            false,
	} {
		cfg := &Config{Env: env}
		assert.Equal(t, want, cfg.IsProduction(), env)
	}
}
