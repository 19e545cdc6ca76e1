package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Значения по умолчанию клиента
const (
	DefaultServerURL        = "http://localhost:8080"
	DefaultDBPath           = "gophsync-client.db"
	DefaultListenAddr       = "127.0.0.1:8787"
	DefaultProbePath        = "/health"
	DefaultProbeInterval    = 15 * time.Second
	DefaultDebounce         = 100 * time.Millisecond
	DefaultDrainInterval    = 30 * time.Second
	DefaultCacheTTL         = 60 * time.Minute
	DefaultSweepInterval    = 5 * time.Minute
	DefaultRequestTimeout   = 30 * time.Second
	DefaultConflictStrategy = "SERVER_WINS"
	DefaultLogLevel         = "info"
)

// Client конфигурация клиента синхронизации
type Client struct {
	ServerURL        string        `yaml:"server_url" toml:"server_url"`
	DBPath           string        `yaml:"db_path" toml:"db_path"`
	Token            string        `yaml:"token" toml:"token"`           // bearer токен, пересылается как есть
	Passphrase       string        `yaml:"passphrase" toml:"passphrase"` // пустая строка = записи не шифруются
	ListenAddr       string        `yaml:"listen_addr" toml:"listen_addr"`
	ProbeURL         string        `yaml:"probe_url" toml:"probe_url"`
	ConflictStrategy string        `yaml:"conflict_strategy" toml:"conflict_strategy"`
	LogLevel         string        `yaml:"log_level" toml:"log_level"`
	ProbeInterval    time.Duration `yaml:"probe_interval" toml:"probe_interval"`
	Debounce         time.Duration `yaml:"debounce" toml:"debounce"`
	DrainInterval    time.Duration `yaml:"drain_interval" toml:"drain_interval"`
	CacheTTL         time.Duration `yaml:"cache_ttl" toml:"cache_ttl"`
	SweepInterval    time.Duration `yaml:"sweep_interval" toml:"sweep_interval"`
	RequestTimeout   time.Duration `yaml:"request_timeout" toml:"request_timeout"`
}

// DefaultClient возвращает конфигурацию клиента по умолчанию.
func DefaultClient() Client {
	return Client{
		ServerURL:        DefaultServerURL,
		DBPath:           DefaultDBPath,
		ListenAddr:       DefaultListenAddr,
		ConflictStrategy: DefaultConflictStrategy,
		LogLevel:         DefaultLogLevel,
		ProbeInterval:    DefaultProbeInterval,
		Debounce:         DefaultDebounce,
		DrainInterval:    DefaultDrainInterval,
		CacheTTL:         DefaultCacheTTL,
		SweepInterval:    DefaultSweepInterval,
		RequestTimeout:   DefaultRequestTimeout,
	}
}

// LoadClient собирает конфигурацию: defaults, файл (если path не пуст), окружение.
func LoadClient(path string, lookup LookupFunc) (Client, error) {
	cfg := DefaultClient()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Client) applyEnv(lookup LookupFunc) error {
	r := &envReader{lookup: lookup}
	r.str("SERVER_URL", &c.ServerURL)
	r.str("DB_PATH", &c.DBPath)
	r.str("TOKEN", &c.Token)
	r.str("PASSPHRASE", &c.Passphrase)
	r.str("LISTEN_ADDR", &c.ListenAddr)
	r.str("PROBE_URL", &c.ProbeURL)
	r.str("CONFLICT_STRATEGY", &c.ConflictStrategy)
	r.str("LOG_LEVEL", &c.LogLevel)
	r.duration("PROBE_INTERVAL", &c.ProbeInterval)
	r.duration("DEBOUNCE", &c.Debounce)
	r.duration("DRAIN_INTERVAL", &c.DrainInterval)
	r.duration("CACHE_TTL", &c.CacheTTL)
	r.duration("SWEEP_INTERVAL", &c.SweepInterval)
	r.duration("REQUEST_TIMEOUT", &c.RequestTimeout)
	return r.err
}

// EffectiveProbeURL возвращает URL проверки доступности сервера.
func (c Client) EffectiveProbeURL() string {
	if c.ProbeURL != "" {
		return c.ProbeURL
	}
	return strings.TrimRight(c.ServerURL, "/") + DefaultProbePath
}

// Validate проверяет согласованность конфигурации.
func (c Client) Validate() error {
	var errs []error

	if u, err := url.Parse(c.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("invalid server_url %q", c.ServerURL))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path is required"))
	}
	switch c.ConflictStrategy {
	case "SERVER_WINS", "CLIENT_WINS", "MERGE", "MANUAL":
	default:
		errs = append(errs, fmt.Errorf("unknown conflict_strategy %q", c.ConflictStrategy))
	}
	if c.DrainInterval < time.Second {
		errs = append(errs, fmt.Errorf("drain_interval must be at least 1s, got %s", c.DrainInterval))
	}
	if c.SweepInterval < time.Second {
		errs = append(errs, fmt.Errorf("sweep_interval must be at least 1s, got %s", c.SweepInterval))
	}
	if c.Debounce < 0 {
		errs = append(errs, errors.New("debounce cannot be negative"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
