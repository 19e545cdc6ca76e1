package config

import (
	"errors"
	"os"
	"time"
)

// Значения по умолчанию сервера
const (
	DefaultServerAddr   = ":8080"
	DefaultServerDBPath = "gophsync-server.db"
	DefaultTokenTTL     = 24 * time.Hour
	DefaultRateLimit    = 100
	DefaultRateWindow   = time.Minute
	DefaultTokenCleanup = time.Hour
)

// Server конфигурация эталонного бэкенда
type Server struct {
	Addr       string        `yaml:"addr" toml:"addr"`
	DBPath     string        `yaml:"db_path" toml:"db_path"`
	JWTSecret  string        `yaml:"jwt_secret" toml:"jwt_secret"`
	LogLevel   string        `yaml:"log_level" toml:"log_level"`
	TokenTTL   time.Duration `yaml:"token_ttl" toml:"token_ttl"`
	RateWindow time.Duration `yaml:"rate_window" toml:"rate_window"`

	// TokenCleanup период удаления истекших записей реестра токенов
	TokenCleanup time.Duration `yaml:"token_cleanup" toml:"token_cleanup"`
	RateLimit    int           `yaml:"rate_limit" toml:"rate_limit"`
}

// DefaultServer возвращает конфигурацию сервера по умолчанию.
func DefaultServer() Server {
	return Server{
		Addr:         DefaultServerAddr,
		DBPath:       DefaultServerDBPath,
		LogLevel:     DefaultLogLevel,
		TokenTTL:     DefaultTokenTTL,
		RateLimit:    DefaultRateLimit,
		RateWindow:   DefaultRateWindow,
		TokenCleanup: DefaultTokenCleanup,
	}
}

// LoadServer собирает конфигурацию сервера: defaults, файл, окружение.
func LoadServer(path string, lookup LookupFunc) (Server, error) {
	cfg := DefaultServer()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	r := &envReader{lookup: lookup}
	r.str("ADDR", &cfg.Addr)
	r.str("DB_PATH", &cfg.DBPath)
	r.str("JWT_SECRET", &cfg.JWTSecret)
	r.str("LOG_LEVEL", &cfg.LogLevel)
	r.duration("TOKEN_TTL", &cfg.TokenTTL)
	r.duration("RATE_WINDOW", &cfg.RateWindow)
	r.duration("TOKEN_CLEANUP", &cfg.TokenCleanup)
	r.integer("RATE_LIMIT", &cfg.RateLimit)
	if r.err != nil {
		return cfg, r.err
	}

	return cfg, nil
}

// Validate проверяет конфигурацию сервера.
func (s Server) Validate() error {
	var errs []error
	if s.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if s.DBPath == "" {
		errs = append(errs, errors.New("db_path is required"))
	}
	if len(s.JWTSecret) < 16 {
		errs = append(errs, errors.New("jwt_secret must be at least 16 characters"))
	}
	if s.RateLimit <= 0 {
		errs = append(errs, errors.New("rate_limit must be positive"))
	}
	if s.RateWindow <= 0 {
		errs = append(errs, errors.New("rate_window must be positive"))
	}
	if s.TokenCleanup < time.Second {
		errs = append(errs, errors.New("token_cleanup must be at least 1s"))
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
