package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/cubecarousel/internal/config"
)

// openLogger opens the log file for appending. An empty path discards logs.
func openLogger(cfg config.Log) (*slog.Logger, func(), error) {
	handlerOpts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.TrimSpace(cfg.Path) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, handlerOpts)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(file, handlerOpts))
	return logger, func() { _ = file.Close() }, nil
}
