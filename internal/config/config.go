package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Strapi   StrapiConfig
	Noona    NoonaConfig
}

type AppConfig struct {
	Port       int
	Env        string
	LogLevel   string
	CORSOrigin string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// StrapiConfig points at the record store that holds all transactional
// records (worked hours, services provided, costs, vouchers, ...).
type StrapiConfig struct {
	BaseURL string
	Token   string
}

// NoonaConfig points at the booking platform HQ API.
type NoonaConfig struct {
	BaseURL   string
	Token     string
	CompanyID string
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments, variables come from
	// the process environment there.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:5173"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "barbitch_admin"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	config.Strapi = StrapiConfig{
		BaseURL: getEnv("STRAPI_URL", "http://localhost:1337"),
		Token:   getEnv("STRAPI_TOKEN", ""),
	}

	config.Noona = NoonaConfig{
		BaseURL:   getEnv("NOONA_URL", "https://api.noona.is/v1"),
		Token:     getEnv("NOONA_TOKEN", ""),
		CompanyID: getEnv("NOONA_COMPANY_ID", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Noona.Token == "" {
		return fmt.Errorf("NOONA_TOKEN is required")
	}
	if c.Noona.CompanyID == "" {
		return fmt.Errorf("NOONA_COMPANY_ID is required")
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

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
