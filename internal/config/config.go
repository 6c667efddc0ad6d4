package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Storage  StorageConfig
	Security SecurityConfig
	Jobs     JobsConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// StorageConfig picks the repository backend.
type StorageConfig struct {
	Driver string
}

type SecurityConfig struct {
	PINHashCost int
}

type JobsConfig struct {
	RevokedTokenSweepInterval time.Duration
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file loaded, using environment", "error", err)
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS"),
	}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "staff_rota"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Storage = StorageConfig{
		Driver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageMemory)),
	}

	pinCost, err := strconv.Atoi(getEnv("PIN_HASH_COST", strconv.Itoa(bcrypt.DefaultCost)))
	if err != nil {
		return nil, fmt.Errorf("invalid PIN_HASH_COST: %w", err)
	}
	config.Security = SecurityConfig{PINHashCost: pinCost}

	sweep, err := time.ParseDuration(getEnv("REVOKED_TOKEN_SWEEP_INTERVAL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REVOKED_TOKEN_SWEEP_INTERVAL: %w", err)
	}
	config.Jobs = JobsConfig{RevokedTokenSweepInterval: sweep}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}

	switch c.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Password == "" {
			return errors.New("DB_PASSWORD is required when STORAGE_DRIVER is postgres")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Security.PINHashCost < bcrypt.MinCost || c.Security.PINHashCost > bcrypt.MaxCost {
		return fmt.Errorf("PIN_HASH_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	if c.Jobs.RevokedTokenSweepInterval <= 0 {
		return errors.New("REVOKED_TOKEN_SWEEP_INTERVAL must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel maps LOG_LEVEL onto slog; unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
