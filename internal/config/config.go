package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Session  SessionConfig
}

type AppConfig struct {
	HTTPPort   string
	CORSOrigin string
}

type DatabaseConfig struct {
	// DatabaseURL takes precedence over the discrete DB_* fields when set.
	DatabaseURL string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type SessionConfig struct {
	// TTL is the inactivity expiry for a session, re-armed on every read.
	TTL time.Duration
}

const (
	defaultHTTPPort       = "3000"
	defaultSessionTTLDays = 30
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		HTTPPort:   opt("PORT"),
		CORSOrigin: opt("CORS_ORIGIN"),
	}
	if cfg.App.HTTPPort == "" {
		cfg.App.HTTPPort = defaultHTTPPort
	}

	cfg.Database = DatabaseConfig{
		DatabaseURL: opt("DATABASE_URL"),
		DBHost:      opt("DB_HOST"),
		DBPort:      opt("DB_PORT"),
		DBName:      opt("DB_NAME"),
		DBUser:      opt("DB_USER"),
		DBPassword:  opt("DB_PASSWORD"),
		DBSSLMode:   opt("DB_SSL_MODE"),
	}
	if cfg.Database.DatabaseURL == "" && cfg.Database.DBHost == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if v, err := strconv.Atoi(opt("DB_CONNECT_TIMEOUT_SECONDS")); err == nil && v > 0 {
		cfg.Database.ConnectTimeout = time.Duration(v) * time.Second
	}
	if v, err := strconv.Atoi(opt("DB_POOL_MAX_CONNS")); err == nil && v > 0 {
		cfg.Database.PoolMaxConns = int32(v)
	}
	if v, err := strconv.Atoi(opt("DB_POOL_MIN_CONNS")); err == nil && v > 0 {
		cfg.Database.PoolMinConns = int32(v)
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == "" {
		cfg.Redis.Port = "6379"
	}

	cfg.Session = SessionConfig{TTL: sessionTTL(opt("SESSION_TTL_DAYS"))}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func sessionTTL(raw string) time.Duration {
	days := defaultSessionTTLDays
	if raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			days = v
		}
	}
	return time.Duration(days) * 24 * time.Hour
}
