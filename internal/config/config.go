package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StoreSQL    = "sql"
	StoreRedis  = "redis"
	StoreMemory = "memory"

	NamesBuiltin = "builtin"
	NamesRemote  = "remote"
)

type Config struct {
	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Per-user blob storage
	StoreBackend  string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Baby name catalog source
	NamesSource string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Observability
	AppEnv           string
	LogLevel         string
	SentryDSN        string
	LogRetentionDays int

	// Server
	Port          string
	CORSOrigins   string
	PublicBaseURL string

	// Share card
	FrameImageURL string
	FrameSiteURL  string
}

// Load reads .env (when present) and then the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", DriverPostgres),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "dadprep"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "dadprep.db"),

		StoreBackend:  getEnv("STORE_BACKEND", StoreSQL),
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		NamesSource: getEnv("NAMES_SOURCE", NamesBuiltin),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		AppEnv:           getEnv("APP_ENV", "dev"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SentryDSN:        getEnv("SENTRY_DSN", ""),
		LogRetentionDays: getIntEnv("LOG_RETENTION_DAYS", 30),

		Port:          getEnv("PORT", "8080"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		FrameImageURL: getEnv("FRAME_IMAGE_URL", "https://lovable.dev/opengraph-image-p98pqg.png"),
		FrameSiteURL:  getEnv("FRAME_SITE_URL", "https://dad-prep-baby-guide.lovable.app"),
	}
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable is required"))
	}
	if c.DBDriver == DriverPostgres && c.DBPassword == "" {
		errs = append(errs, errors.New("DB_PASSWORD environment variable is required"))
	}
	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, errors.New("DB_DRIVER must be postgres or sqlite"))
	}
	switch c.StoreBackend {
	case StoreSQL, StoreRedis, StoreMemory:
	default:
		errs = append(errs, errors.New("STORE_BACKEND must be sql, redis or memory"))
	}
	switch c.NamesSource {
	case NamesBuiltin, NamesRemote:
	default:
		errs = append(errs, errors.New("NAMES_SOURCE must be builtin or remote"))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDev() bool {
	return c.AppEnv == "dev"
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func (c *Config) RedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
