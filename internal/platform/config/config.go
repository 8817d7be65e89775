package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	HTTP struct {
		Port               int
		CORSAllowedOrigins []string
	}
	App struct {
		Env                     string
		LogLevel                string
		Storage                 string
		StrictStatusTransitions bool
	}
	Database struct {
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		MaxConns int
	}
	Redis struct {
		Enabled  bool
		Host     string
		Port     int
		DB       int
		CacheTTL time.Duration
	}
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// LoadConfig reads an optional .env file and then the process environment.
// Values already present in the environment win over the file.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}

	cfg.HTTP.Port = getEnvInt("HTTP_PORT", 8080)
	cfg.HTTP.CORSAllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.App.Storage = strings.ToLower(getEnv("STORAGE", StoragePostgres))
	cfg.App.StrictStatusTransitions = getEnvBool("STRICT_STATUS_TRANSITIONS", false)

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Name = getEnv("DB_NAME", "fleet_ledger")
	cfg.Database.MaxConns = getEnvInt("DB_MAX_CONNS", 25)

	cfg.Redis.Enabled = getEnvBool("REDIS_ENABLED", true)
	cfg.Redis.Host = getEnv("REDIS_HOST", "localhost")
	cfg.Redis.Port = getEnvInt("REDIS_PORT", 6379)
	cfg.Redis.DB = getEnvInt("REDIS_DB", 0)
	cfg.Redis.CacheTTL = getEnvDuration("FINANCE_CACHE_TTL", 5*time.Minute)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.App.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("config: unknown STORAGE %q (want %s or %s)", c.App.Storage, StoragePostgres, StorageMemory)
	}

	if c.HTTP.Port <= 0 {
		return fmt.Errorf("config: HTTP_PORT must be positive, got %d", c.HTTP.Port)
	}
	if c.App.Storage == StoragePostgres && c.Database.Port <= 0 {
		return fmt.Errorf("config: DB_PORT must be positive, got %d", c.Database.Port)
	}
	if c.Redis.Enabled {
		if c.Redis.Port <= 0 {
			return fmt.Errorf("config: REDIS_PORT must be positive, got %d", c.Redis.Port)
		}
		if c.Redis.CacheTTL <= 0 {
			return fmt.Errorf("config: FINANCE_CACHE_TTL must be positive, got %s", c.Redis.CacheTTL)
		}
	}
	return nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTP.Port)
}

func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
