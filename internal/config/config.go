package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the resolved cubecarousel configuration.
type Config struct {
	Carousel Carousel
	Source   Source
	Log      Log
}

// Carousel configures the widget itself.
type Carousel struct {
	Mode         string // auto, cube or inline
	Width        int
	Height       int
	Duration     time.Duration
	Autoplay     time.Duration // zero disables autoplay
	ShortestPath bool
}

// Source selects where items come from.
type Source struct {
	Kind string // demo, file, http or sqlite
	Path string
	URL  string
}

// Log configures the log file. The terminal belongs to the TUI, so logs never
// go to stderr while it runs.
type Log struct {
	Path  string
	Level slog.Level
}

const (
	defaultConfigPath = "~/.config/cubecarousel/config.toml"
	defaultLogPath    = "~/.local/state/cubecarousel/cubecarousel.log"

	ModeAuto   = "auto"
	ModeCube   = "cube"
	ModeInline = "inline"

	defaultWidth    = 58
	defaultHeight   = 20
	defaultDuration = 800 * time.Millisecond
	defaultSource   = "demo"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Carousel: Carousel{
			Mode:         ModeAuto,
			Width:        defaultWidth,
			Height:       defaultHeight,
			Duration:     defaultDuration,
			ShortestPath: true,
		},
		Source: Source{Kind: defaultSource},
		Log: Log{
			Path:  mustExpand(defaultLogPath),
			Level: slog.LevelInfo,
		},
	}
}

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Carousel struct {
			Mode         string `toml:"mode"`
			Width        int    `toml:"width"`
			Height       int    `toml:"height"`
			Duration     string `toml:"duration"`
			Autoplay     string `toml:"autoplay"`
			ShortestPath *bool  `toml:"shortest_path"`
		} `toml:"carousel"`
		Source struct {
			Kind string `toml:"kind"`
			Path string `toml:"path"`
			URL  string `toml:"url"`
		} `toml:"source"`
		Log struct {
			Path  string `toml:"path"`
			Level string `toml:"level"`
		} `toml:"log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if mode := strings.ToLower(strings.TrimSpace(raw.Carousel.Mode)); mode != "" {
		switch mode {
		case ModeAuto, ModeCube, ModeInline:
			cfg.Carousel.Mode = mode
		default:
			return Config{}, fmt.Errorf("parse config: carousel.mode %q: want auto, cube or inline", raw.Carousel.Mode)
		}
	}
	if raw.Carousel.Width > 0 {
		cfg.Carousel.Width = raw.Carousel.Width
	}
	if raw.Carousel.Height > 0 {
		cfg.Carousel.Height = raw.Carousel.Height
	}
	duration, err := parseDuration("carousel.duration", raw.Carousel.Duration)
	if err != nil {
		return Config{}, err
	}
	if duration > 0 {
		cfg.Carousel.Duration = duration
	}
	cfg.Carousel.Autoplay, err = parseDuration("carousel.autoplay", raw.Carousel.Autoplay)
	if err != nil {
		return Config{}, err
	}
	if raw.Carousel.ShortestPath != nil {
		cfg.Carousel.ShortestPath = *raw.Carousel.ShortestPath
	}

	if kind := strings.ToLower(strings.TrimSpace(raw.Source.Kind)); kind != "" {
		cfg.Source.Kind = kind
	}
	if p := strings.TrimSpace(raw.Source.Path); p != "" {
		cfg.Source.Path = mustExpand(p)
	}
	cfg.Source.URL = strings.TrimSpace(raw.Source.URL)

	if p := strings.TrimSpace(raw.Log.Path); p != "" {
		cfg.Log.Path = mustExpand(p)
	}
	if lvl := strings.TrimSpace(raw.Log.Level); lvl != "" {
		if err := cfg.Log.Level.UnmarshalText([]byte(lvl)); err != nil {
			return Config{}, fmt.Errorf("parse config: log.level: %w", err)
		}
	}

	return cfg, nil
}

func parseDuration(key, value string) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "0" || strings.EqualFold(trimmed, "off") {
		return 0, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("parse config: %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("parse config: %s: negative duration %s", key, trimmed)
	}
	return d, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
