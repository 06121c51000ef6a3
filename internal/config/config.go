package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	HTTPPort              string
	StoreDriver           string
	DatabaseURL           string
	MongoDatabase         string
	RedisURL              string
	EmailSuffix           string
	LogLevel              string
	CORSAllowedOrigins    []string
	TrustedProxies        []string
	SubmitRateLimitPerMin int
	DBMaxOpenConns        int
	DBMaxIdleConns        int
	DBConnMaxIdle         time.Duration
	DBConnMaxLife         time.Duration
	RequestTimeout        time.Duration
}

var defaults = map[string]any{
	"PORT":                      "5000",
	"STORE_DRIVER":              DriverMemory,
	"DATABASE_URL":              "",
	"MONGO_DATABASE":            "clubs",
	"REDIS_URL":                 "",
	"EMAIL_SUFFIX":              "@viit.ac.in",
	"LOG_LEVEL":                 "info",
	"CORS_ALLOWED_ORIGINS":      "*",
	"TRUSTED_PROXIES":           "",
	"SUBMIT_RATE_LIMIT_PER_MIN": 10,
	"DB_MAX_OPEN_CONNS":         25,
	"DB_MAX_IDLE_CONNS":         10,
	"DB_CONN_MAX_IDLE":          5 * time.Minute,
	"DB_CONN_MAX_LIFE":          30 * time.Minute,
	"REQUEST_TIMEOUT":           10 * time.Second,
}

// Load reads the runtime configuration once at process start. Values come from
// the environment, after an optional .env file and an optional CONFIG_FILE.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	if file := strings.TrimSpace(v.GetString("CONFIG_FILE")); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		HTTPPort:              strings.TrimSpace(v.GetString("PORT")),
		StoreDriver:           strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		DatabaseURL:           strings.TrimSpace(v.GetString("DATABASE_URL")),
		MongoDatabase:         strings.TrimSpace(v.GetString("MONGO_DATABASE")),
		RedisURL:              strings.TrimSpace(v.GetString("REDIS_URL")),
		EmailSuffix:           strings.TrimSpace(v.GetString("EMAIL_SUFFIX")),
		LogLevel:              strings.TrimSpace(v.GetString("LOG_LEVEL")),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		TrustedProxies:        splitList(v.GetString("TRUSTED_PROXIES")),
		SubmitRateLimitPerMin: v.GetInt("SUBMIT_RATE_LIMIT_PER_MIN"),
		DBMaxOpenConns:        v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns:        v.GetInt("DB_MAX_IDLE_CONNS"),
		DBConnMaxIdle:         v.GetDuration("DB_CONN_MAX_IDLE"),
		DBConnMaxLife:         v.GetDuration("DB_CONN_MAX_LIFE"),
		RequestTimeout:        v.GetDuration("REQUEST_TIMEOUT"),
	}
	switch cfg.StoreDriver {
	case "pq", "postgresql", "pgx":
		cfg.StoreDriver = DriverPostgres
	case "mongodb":
		cfg.StoreDriver = DriverMongo
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	problems := make([]string, 0, 4)
	switch c.StoreDriver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres, DriverMongo:
		if c.DatabaseURL == "" {
			problems = append(problems, fmt.Sprintf("DATABASE_URL is required for STORE_DRIVER=%s", c.StoreDriver))
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if c.HTTPPort == "" {
		problems = append(problems, "PORT must not be empty")
	}
	if c.EmailSuffix == "" {
		problems = append(problems, "EMAIL_SUFFIX must not be empty")
	}
	if c.SubmitRateLimitPerMin < 0 {
		problems = append(problems, "SUBMIT_RATE_LIMIT_PER_MIN must not be negative")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
