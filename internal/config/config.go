// Package config loads the tool server and CLI settings.
//
// Settings come from an optional TOML file and are then overridden by
// environment variables:
//
//	CSSCOLOR_LOG_LEVEL     debug, info, warn or error
//	CSSCOLOR_DEFAULT_MODE  light or dark
//
// CSSCOLOR_CONFIG names the file when no path is passed explicitly.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Environment variables read by Load.
const (
	EnvConfig      = "CSSCOLOR_CONFIG"
	EnvLogLevel    = "CSSCOLOR_LOG_LEVEL"
	EnvDefaultMode = "CSSCOLOR_DEFAULT_MODE"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds every setting. The zero value is not valid; start from
// Default.
type Config struct {
	LogLevel    string  `toml:"log_level"`
	DefaultMode string  `toml:"default_mode"`
	Swatch      Swatch  `toml:"swatch"`
	Palette     Palette `toml:"palette"`
}

// Swatch sizes the single-color preview image. MaxSize is the largest width
// or height a caller may request.
type Swatch struct {
	Width       int `toml:"width"`
	Height      int `toml:"height"`
	CheckerSize int `toml:"checker_size"`
	MaxSize     int `toml:"max_size"`
}

// Palette lays out the multi-color sheet.
type Palette struct {
	Columns  int `toml:"columns"`
	CellSize int `toml:"cell_size"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:    "info",
		DefaultMode: "light",
		Swatch:      Swatch{Width: 64, Height: 64, CheckerSize: 8, MaxSize: 2048},
		Palette:     Palette{Columns: 4, CellSize: 48},
	}
}

// Load reads path over the defaults, applies the environment and validates
// the result. An empty path falls back to $CSSCOLOR_CONFIG; when that is
// empty too, only the defaults and environment are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvDefaultMode); v != "" {
		cfg.DefaultMode = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.DefaultMode) {
	case "light", "dark":
	default:
		return fmt.Errorf("default_mode %q: %w", c.DefaultMode, ErrInvalid)
	}

	positive := []struct {
		name  string
		value int
	}{
		{"swatch.width", c.Swatch.Width},
		{"swatch.height", c.Swatch.Height},
		{"swatch.checker_size", c.Swatch.CheckerSize},
		{"swatch.max_size", c.Swatch.MaxSize},
		{"palette.columns", c.Palette.Columns},
		{"palette.cell_size", c.Palette.CellSize},
	}
	for _, f := range positive {
		if f.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d: %w", f.name, f.value, ErrInvalid)
		}
	}

	bounded := []struct {
		name  string
		value int
	}{
		{"swatch.width", c.Swatch.Width},
		{"swatch.height", c.Swatch.Height},
		{"palette.cell_size", c.Palette.CellSize},
	}
	for _, f := range bounded {
		if f.value > c.Swatch.MaxSize {
			return fmt.Errorf("%s %d exceeds swatch.max_size %d: %w", f.name, f.value, c.Swatch.MaxSize, ErrInvalid)
		}
	}
	return nil
}

// Level returns the slog level for LogLevel. Call Validate first; an
// unknown level yields slog.LevelInfo.
func (c Config) Level() slog.Level {
	l, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// ParseLevel maps debug, info, warn and error (any case) to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", s, ErrInvalid)
	}
	return l, nil
}

// NewLogger returns a text logger on stderr at the configured level.
// Stdout is reserved for protocol and command output.
func (c Config) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: c.Level()}))
}
