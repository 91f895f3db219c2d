package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const DefaultPort = "5000"

// Config holds everything the server and the transcript CLI read from the environment.
type Config struct {
	DatabaseURL string `validate:"required"`
	Port        string `validate:"required,numeric"`

	DBMaxOpenConns         int           `validate:"gte=1"`
	DBMaxIdleConns         int           `validate:"gte=0,ltefield=DBMaxOpenConns"`
	DBConnMaxIdleTime      time.Duration `validate:"gte=0"`
	DBConnMaxLifetime      time.Duration `validate:"gte=0"`
	DBPreferSimpleProtocol bool
	DBSlowThreshold        time.Duration `validate:"gte=0"`

	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=console json"`

	CorsAllowOrigins string        `validate:"required"`
	RequestTimeout   time.Duration `validate:"gte=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// =======================
// ENV LOADER
// =======================

// LoadEnv loads .env (outside production) and builds a validated Config.
func LoadEnv() (*Config, error) {
	if GetEnv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Debug().Msg("no .env file found, using process environment")
		} else {
			log.Debug().Msg(".env file loaded")
		}
	}
	return FromEnv()
}

// FromEnv reads the process environment without touching .env files.
func FromEnv() (*Config, error) {
	p := envParser{}

	cfg := &Config{
		DatabaseURL: GetEnv("DATABASE_URL"),
		Port:        GetEnv("PORT", DefaultPort),

		DBMaxOpenConns:         p.int("DB_MAX_OPEN_CONNS", 20),
		DBMaxIdleConns:         p.int("DB_MAX_IDLE_CONNS", 10),
		DBConnMaxIdleTime:      p.duration("DB_CONN_MAX_IDLE_TIME", 60*time.Second),
		DBConnMaxLifetime:      p.duration("DB_CONN_MAX_LIFETIME", 10*time.Minute),
		DBPreferSimpleProtocol: p.bool("DB_PREFER_SIMPLE_PROTOCOL", true),
		DBSlowThreshold:        p.duration("DB_SLOW_THRESHOLD", 200*time.Millisecond),

		LogLevel:  strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(GetEnv("LOG_FORMAT", "console")),

		CorsAllowOrigins: GetEnv("CORS_ALLOW_ORIGINS", "*"),
		RequestTimeout:   p.duration("REQUEST_TIMEOUT", 0),
		ShutdownTimeout:  p.duration("SHUTDOWN_TIMEOUT", 5*time.Second),
	}
	if p.err != nil {
		return nil, p.err
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// envParser keeps the first parse error so FromEnv can report it once.
type envParser struct {
	err error
}

func (p *envParser) int(key string, def int) int {
	raw := GetEnv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return n
}

func (p *envParser) bool(key string, def bool) bool {
	raw := GetEnv(key)
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return b
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	raw := GetEnv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw, err)
		return def
	}
	return d
}

func (p *envParser) fail(key, raw string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid value %q for %s: %w", raw, key, err)
	}
}
