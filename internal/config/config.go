package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap/zapcore"
)

// Default values for configuration
const (
	DefaultLogFile    = "pong.log"
	DefaultLogLevel   = "info"
	DefaultForeground = "#ffffff"
	DefaultBackground = "#000000"
	DefaultEnvFile    = ".env"
)

// Config holds the application configuration. Game rules are fixed and
// not part of it.
type Config struct {
	LogFile    string
	LogLevel   zapcore.Level
	Sound      bool
	Foreground color.Color
	Background color.Color
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", DefaultEnvFile, err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	level, err := zapcore.ParseLevel(get("PONG_LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("PONG_LOG_LEVEL: %w", err)
	}

	sound, err := strconv.ParseBool(get("PONG_SOUND", "true"))
	if err != nil {
		return nil, fmt.Errorf("PONG_SOUND must be a boolean, got %q", getenv("PONG_SOUND"))
	}

	fg, err := parseColor(get("PONG_FOREGROUND", DefaultForeground))
	if err != nil {
		return nil, fmt.Errorf("PONG_FOREGROUND: %w", err)
	}

	bg, err := parseColor(get("PONG_BACKGROUND", DefaultBackground))
	if err != nil {
		return nil, fmt.Errorf("PONG_BACKGROUND: %w", err)
	}

	// Validate: pieces must stay visible
	if fg == bg {
		return nil, errors.New("PONG_FOREGROUND and PONG_BACKGROUND must differ")
	}

	cfg := &Config{
		LogFile:    get("PONG_LOG_FILE", DefaultLogFile),
		LogLevel:   level,
		Sound:      sound,
		Foreground: fg,
		Background: bg,
	}

	return cfg, nil
}

// parseColor accepts #rrggbb hex colors
func parseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
