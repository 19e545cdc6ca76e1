// Package config загружает конфигурацию клиента и сервера:
// значения по умолчанию, затем файл (.yaml/.yml/.toml), затем переменные окружения GOPHSYNC_*.
// Флаги командной строки применяются поверх в cmd.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "GOPHSYNC_"

// ErrUnsupportedFormat возвращается для файла конфигурации с неизвестным расширением.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// LookupFunc источник переменных окружения (os.LookupEnv в проде, map в тестах)
type LookupFunc func(key string) (string, bool)

// decodeFile читает файл конфигурации в v по расширению.
func decodeFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse yaml config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse toml config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

// envReader накапливает первую ошибку разбора, чтобы не проверять err после каждого поля.
type envReader struct {
	lookup LookupFunc
	err    error
}

func (r *envReader) str(name string, dst *string) {
	if v, ok := r.lookup(EnvPrefix + name); ok {
		*dst = v
	}
}

func (r *envReader) duration(name string, dst *time.Duration) {
	v, ok := r.lookup(EnvPrefix + name)
	if !ok || r.err != nil {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.err = fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		return
	}
	*dst = d
}

func (r *envReader) integer(name string, dst *int) {
	v, ok := r.lookup(EnvPrefix + name)
	if !ok || r.err != nil {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.err = fmt.Errorf("%s%s: %w", EnvPrefix, name, err)
		return
	}
	*dst = n
}

// ParseLevel переводит строковый уровень логирования в slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return l, nil
}

// NewLogger создает текстовый slog логгер с уровнем из конфигурации.
// Неизвестный уровень трактуется как info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	l, err := ParseLevel(level)
	if err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
}
