package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/cubecarousel/internal/carousel"
	"github.com/five82/cubecarousel/internal/config"
)

// DetectMode picks the presentation mode. An explicit cube or inline setting
// wins; otherwise terminals without color support get the inline strip.
func DetectMode(setting string, profile termenv.Profile) carousel.Mode {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case config.ModeCube:
		return carousel.ModeCube
	case config.ModeInline:
		return carousel.ModeInline
	}
	if profile == termenv.Ascii {
		return carousel.ModeInline
	}
	return carousel.ModeCube
}

// TerminalProfile reports the color profile of stdout.
func TerminalProfile() termenv.Profile {
	return lipgloss.ColorProfile()
}
