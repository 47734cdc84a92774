package ui

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/cubecarousel/internal/carousel"
	"github.com/five82/cubecarousel/internal/source"
)

// Minimum pane size (including the border) that can hold a title and a rule.
const (
	minPaneWidth  = 8
	minPaneHeight = 4
)

var errPaneTooSmall = errors.New("pane too small")

// paneStyle is the layout style copied into every pane template.
func paneStyle() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1)
}

// renderItem lays item out inside a pane of tmpl's size. The result is the
// pane's inner content; the border is drawn at view time so theme changes
// apply without re-rendering.
func renderItem(item source.Item, tmpl carousel.Template, index int) (string, error) {
	if tmpl.Width < minPaneWidth || tmpl.Height < minPaneHeight {
		return "", fmt.Errorf("%w: %dx%d", errPaneTooSmall, tmpl.Width, tmpl.Height)
	}
	innerW := tmpl.Width - 2
	innerH := tmpl.Height - 2
	textW := innerW - tmpl.Style.GetHorizontalPadding()
	if textW < 1 {
		textW = 1
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(ansi.Truncate(item.Label(), textW, "…")))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", textW))
	if body := strings.TrimSpace(item.Body); body != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(textW).Render(body))
	}
	if url := strings.TrimSpace(item.ImageURL); url != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Faint(true).Render(ansi.Truncate(url, textW, "…")))
	}

	return tmpl.Style.
		Width(innerW).
		Height(innerH).
		MaxHeight(innerH).
		Render(b.String()), nil
}

// frame draws a pane's border. An empty (placeholder) pane still gets a
// full-size box.
func frame(p carousel.Pane, dims carousel.Dimensions, style lipgloss.Style) string {
	return style.
		Width(dims.Width - 2).
		Height(dims.Height - 2).
		MaxHeight(dims.Height).
		Render(p.Content)
}

// faceWidths splits width between the outgoing and incoming cube faces after
// rotating by degrees. Faces are projected orthographically and scaled so the
// pair always fills width.
func faceWidths(width int, degrees float64) (outgoing, incoming int) {
	rad := math.Abs(degrees) * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	if cos+sin == 0 {
		return width, 0
	}
	outgoing = int(math.Round(float64(width) * cos / (cos + sin)))
	outgoing = max(0, min(width, outgoing))
	return outgoing, width - outgoing
}

// composeCube renders the cube mid-rotation. front is the face in view,
// incoming the face rotating in from dir's side.
func composeCube(front, incoming string, width int, dir carousel.Direction, degrees float64) string {
	out, in := faceWidths(width, degrees)
	frontLines := strings.Split(front, "\n")
	inLines := strings.Split(incoming, "\n")
	lines := make([]string, max(len(frontLines), len(inLines)))
	for i := range lines {
		f := lineAt(frontLines, i)
		n := lineAt(inLines, i)
		if dir == carousel.Right {
			lines[i] = ansi.Cut(f, width-out, width) + ansi.Cut(n, 0, in)
		} else {
			lines[i] = ansi.Cut(n, width-in, width) + ansi.Cut(f, 0, out)
		}
	}
	return strings.Join(lines, "\n")
}

// composeStrip renders the inline strip of boxes (left to right) through a
// viewport of width, shifted by offset pane widths.
func composeStrip(boxes []string, width int, offset float64) string {
	strip := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	start := int(math.Round(-offset * float64(width)))
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, start, start+width)
	}
	return strings.Join(lines, "\n")
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
