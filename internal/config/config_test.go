package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "8h", cfg.JWT.AccessExpiration)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 15*time.Minute, cfg.Jobs.RevokedTokenSweepInterval)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			JWT:      JWTConfig{Secret: "secret", AccessExpiration: "8h"},
			Storage:  StorageConfig{Driver: StorageMemory},
			Security: SecurityConfig{PINHashCost: 10},
			Jobs:     JobsConfig{RevokedTokenSweepInterval: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid memory config", func(c *Config) {}, false},
		{"Missing JWT secret", func(c *Config) { c.JWT.Secret = "" }, true},
		{"Bad access expiration", func(c *Config) { c.JWT.AccessExpiration = "eight hours" }, true},
		{"Unknown storage driver", func(c *Config) { c.Storage.Driver = "mysql" }, true},
		{"Postgres without password", func(c *Config) { c.Storage.Driver = StoragePostgres }, true},
		{"Postgres with password", func(c *Config) {
			c.Storage.Driver = StoragePostgres
			c.Database.Password = "pw"
		}, false},
		{"PIN cost too low", func(c *Config) { c.Security.PINHashCost = 1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{User: "u", Password: "p", Host: "db", Port: 5432, Name: "rota", SSLMode: "disable"}}
	assert.Equal(t, "postgres://u:p@db:5432/rota?sslmode=disable", cfg.DatabaseURL())
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, (&Config{App: AppConfig{LogLevel: "debug"}}).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{App: AppConfig{LogLevel: "loud"}}).SlogLevel())
}
