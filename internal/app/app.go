package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/five82/cubecarousel/internal/config"
	"github.com/five82/cubecarousel/internal/prefs"
	"github.com/five82/cubecarousel/internal/source"
	"github.com/five82/cubecarousel/internal/ui"
)

// Options configure the cubecarousel application. Non-empty overrides win
// over the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/cubecarousel/prefs.toml
	Mode       string // auto, cube or inline
	SourceKind string // demo, file, http or sqlite
	SourceArg  string // path for file/sqlite, URL for http
}

// Run boots the cubecarousel TUI until the user quits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	prefStore, err := prefs.Open(opts.PrefsPath)
	if err != nil {
		return err
	}
	userPrefs, err := prefStore.Load()
	if err != nil {
		logger.Warn("load prefs, using defaults", "path", prefStore.Path(), "error", err)
	}

	src, err := source.New(source.Spec{
		Kind: source.Kind(cfg.Source.Kind),
		Path: cfg.Source.Path,
		URL:  cfg.Source.URL,
	})
	if err != nil {
		return fmt.Errorf("init source: %w", err)
	}

	mode := ui.DetectMode(cfg.Carousel.Mode, ui.TerminalProfile())
	logger.Info("starting cubecarousel",
		"mode", mode.String(),
		"source", cfg.Source.Kind,
		"autoplay", cfg.Carousel.Autoplay.String(),
	)

	err = ui.Run(ui.Options{
		Context:    ctx,
		Source:     src,
		Carousel:   cfg.Carousel,
		Mode:       mode,
		Logger:     logger,
		ThemeName:  userPrefs.Theme,
		ShowEvents: userPrefs.ShowEvents,
		Prefs:      prefStore,
	})
	if err != nil {
		logger.Error("ui exited", "error", err)
	}
	return err
}

// applyOverrides folds command-line overrides into cfg.
func applyOverrides(cfg *config.Config, opts Options) error {
	if mode := strings.ToLower(strings.TrimSpace(opts.Mode)); mode != "" {
		switch mode {
		case config.ModeAuto, config.ModeCube, config.ModeInline:
			cfg.Carousel.Mode = mode
		default:
			return fmt.Errorf("invalid mode %q (want auto, cube or inline)", opts.Mode)
		}
	}

	if kind := strings.ToLower(strings.TrimSpace(opts.SourceKind)); kind != "" {
		cfg.Source = config.Source{Kind: kind}
	}
	if arg := strings.TrimSpace(opts.SourceArg); arg != "" {
		if source.Kind(cfg.Source.Kind) == source.KindHTTP {
			cfg.Source.URL = arg
		} else {
			cfg.Source.Path = arg
		}
	}
	return nil
}
