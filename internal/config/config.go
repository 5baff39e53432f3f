package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Dataset sources
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceDatabase = "database"
)

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Dataset  DatasetConfig
	Security SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	LogLevel         string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
	// TrustedProxies are CIDRs whose X-Forwarded-For entries are believed
	TrustedProxies []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	Path            string
	AutoMigrate     bool
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type DatasetConfig struct {
	Source          string
	RecordsPath     string
	ProvincesPath   string
	StrictLoading   bool
	NormalizeLabels bool
	SeedDatabase    bool
	// WatchFiles reloads a file source when its files change
	WatchFiles bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
	AdminTokenSecret   string
	AdminTokenIssuer   string
}

// Load reads .env when present, then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			LogLevel:        getEnv("LOG_LEVEL", "info"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "cdf_user"),
			Password:        getEnv("DB_PASSWORD", "cdf_password"),
			Name:            getEnv("DB_NAME", "cdf_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			Path:            getEnv("DB_PATH", "cdf.db"),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 10),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Dataset: DatasetConfig{
			Source:          strings.ToLower(getEnv("DATASET_SOURCE", SourceEmbedded)),
			RecordsPath:     getEnv("DATASET_RECORDS_PATH", ""),
			ProvincesPath:   getEnv("DATASET_PROVINCES_PATH", ""),
			StrictLoading:   getBoolEnv("DATASET_STRICT", false),
			NormalizeLabels: getBoolEnv("DATASET_NORMALIZE_LABELS", false),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			WatchFiles:      getBoolEnv("DATASET_WATCH", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
			AdminTokenSecret:   getEnv("ADMIN_TOKEN_SECRET", ""),
			AdminTokenIssuer:   getEnv("ADMIN_TOKEN_ISSUER", "cdf-insights"),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()
	config.Server.TrustedProxies = splitList(os.Getenv("TRUSTED_PROXIES"))

	return config
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	var problems []string

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("SERVER_PORT must be numeric, got %q", c.Server.Port))
	}

	switch c.Dataset.Source {
	case SourceEmbedded:
	case SourceFile:
		if c.Dataset.RecordsPath == "" {
			problems = append(problems, "DATASET_RECORDS_PATH is required when DATASET_SOURCE=file")
		}
	case SourceDatabase:
		switch c.Database.Driver {
		case DriverPostgres:
			if c.Database.Host == "" || c.Database.Name == "" {
				problems = append(problems, "DB_HOST and DB_NAME are required for the postgres driver")
			}
		case DriverSQLite:
			if c.Database.Path == "" {
				problems = append(problems, "DB_PATH is required for the sqlite driver")
			}
		default:
			problems = append(problems, fmt.Sprintf("DB_DRIVER must be postgres or sqlite, got %q", c.Database.Driver))
		}
	default:
		problems = append(problems, fmt.Sprintf("DATASET_SOURCE must be embedded, file or database, got %q", c.Dataset.Source))
	}

	for _, cidr := range c.Server.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			problems = append(problems, fmt.Sprintf("TRUSTED_PROXIES entry %q is not a CIDR", cidr))
		}
	}

	if c.Security.RateLimitPerSecond <= 0 {
		problems = append(problems, "RATE_LIMIT_PER_SECOND must be positive")
	}
	if c.Security.RateLimitBurst < c.Security.RateLimitPerSecond {
		problems = append(problems, "RATE_LIMIT_BURST must be at least RATE_LIMIT_PER_SECOND")
	}
	if c.IsProduction() && len(c.Security.AdminTokenSecret) < 32 {
		problems = append(problems, "ADMIN_TOKEN_SECRET must be at least 32 characters in production")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// AdminEnabled reports whether the reload endpoint can verify tokens
func (c *Config) AdminEnabled() bool {
	return c.Security.AdminTokenSecret != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	return splitList(corsOrigins)
}

// splitList splits a comma separated value, dropping blank entries
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
