package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	App      AppConfig      `yaml:"app"`
	Portal   PortalConfig   `yaml:"portal"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

// AppConfig holds API server configuration
type AppConfig struct {
	Port               int      `yaml:"port"`
	Env                string   `yaml:"env"`
	LogLevel           string   `yaml:"log_level"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// PortalConfig holds configuration of the browser-facing portal
type PortalConfig struct {
	Port                 int    `yaml:"port"`
	APIBaseURL           string `yaml:"api_base_url"`
	APITimeoutSeconds    int    `yaml:"api_timeout_seconds"`
	SessionIdleMinutes   int    `yaml:"session_idle_minutes"`
	SessionEvictSchedule string `yaml:"session_evict_schedule"` // cron expression, e.g. "@every 1m"
}

// Load reads .env (optional), then the YAML file at CONFIG_PATH (optional,
// default config.yaml). Environment variables override YAML values.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := defaults()

	configPath := getEnv("CONFIG_PATH", "config.yaml")
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", configPath, err)
		}
		slog.Info("loaded config file", "path", configPath)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	return config, nil
}

func defaults() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			User:    "postgres",
			Name:    "employee_portal",
			SSLMode: "disable",
		},
		App: AppConfig{
			Port:               5000,
			Env:                "development",
			LogLevel:           "info",
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
		Portal: PortalConfig{
			Port:                 3000,
			APIBaseURL:           "http://localhost:5000",
			APITimeoutSeconds:    30,
			SessionIdleMinutes:   30,
			SessionEvictSchedule: "@every 1m",
		},
	}
}

func (c *Config) applyEnv() error {
	var err error

	// Database configuration
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	if c.Database.Port, err = getEnvInt("DB_PORT", c.Database.Port); err != nil {
		return err
	}
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.SSLMode = getEnv("DB_SSL_MODE", c.Database.SSLMode)

	// Application configuration
	if c.App.Port, err = getEnvInt("APP_PORT", c.App.Port); err != nil {
		return err
	}
	c.App.Env = getEnv("APP_ENV", c.App.Env)
	c.App.LogLevel = getEnv("LOG_LEVEL", c.App.LogLevel)
	if origins := getEnvSlice("CORS_ALLOWED_ORIGINS"); len(origins) > 0 {
		c.App.CORSAllowedOrigins = origins
	}

	// Portal configuration
	if c.Portal.Port, err = getEnvInt("PORTAL_PORT", c.Portal.Port); err != nil {
		return err
	}
	c.Portal.APIBaseURL = getEnv("API_BASE_URL", c.Portal.APIBaseURL)
	if c.Portal.APITimeoutSeconds, err = getEnvInt("API_TIMEOUT_SECONDS", c.Portal.APITimeoutSeconds); err != nil {
		return err
	}
	if c.Portal.SessionIdleMinutes, err = getEnvInt("PORTAL_SESSION_IDLE_MINUTES", c.Portal.SessionIdleMinutes); err != nil {
		return err
	}
	c.Portal.SessionEvictSchedule = getEnv("PORTAL_SESSION_EVICT_SCHEDULE", c.Portal.SessionEvictSchedule)

	return nil
}

// ValidateAPI validates the settings the API server depends on
func (c *Config) ValidateAPI() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.App.Port <= 0 {
		return fmt.Errorf("APP_PORT must be positive")
	}
	return nil
}

// ValidatePortal validates the settings the portal depends on
func (c *Config) ValidatePortal() error {
	u, err := url.Parse(c.Portal.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", c.Portal.APIBaseURL)
	}
	if c.Portal.Port <= 0 {
		return fmt.Errorf("PORTAL_PORT must be positive")
	}
	if c.Portal.SessionIdleMinutes <= 0 {
		return fmt.Errorf("PORTAL_SESSION_IDLE_MINUTES must be positive")
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

// SlogLevel maps LOG_LEVEL onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
