package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/cubecarousel/internal/carousel"
)

// carouselWidth is the width available to the carousel's parent.
func (m Model) carouselWidth() int {
	w := m.width - carouselMargin
	if m.showEvents && m.width >= LayoutSideEventsWidth {
		w -= EventsPanelWidth
	}
	return max(0, w)
}

func (m Model) renderMain() string {
	styles := m.theme.Styles()

	header := m.renderHeader(styles)
	body := m.renderBody(styles)
	status := m.renderStatusLine(styles)
	footer := m.renderFooter(styles)

	if m.showEvents {
		events := m.renderEvents(styles)
		if m.width >= LayoutSideEventsWidth {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, events)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, events)
		}
	}

	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))
	body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
}

func (m Model) renderHeader(styles Styles) string {
	bg := NewBgStyle(m.theme.Surface)

	left := bg.Join([]string{
		bg.Render("cubecarousel", styles.Logo),
		bg.Render(m.carousel.Mode().String(), styles.MutedText),
		bg.Render(m.stateLabel(), m.stateStyle(styles)),
	}, " · ")

	var badges []string
	if m.carousel.AutoplayPending() {
		badges = append(badges, bg.Render("autoplay", styles.SuccessText))
	} else if m.session.autoplay && m.carousel.AutoplayEnabled() {
		badges = append(badges, bg.Render("autoplay paused", styles.WarningText))
	}
	if m.carousel.IsLocked() && m.carousel.State() == carousel.StateIdle {
		badges = append(badges, bg.Render("locked", styles.DangerText))
	}
	badges = append(badges, bg.Render(m.theme.Name, styles.FaintText))
	right := bg.Join(badges, "  ")

	return styles.Header.Width(m.width).Render(bg.Spread(left, right, max(0, m.width-2)))
}

func (m Model) stateLabel() string {
	if m.loading {
		return "loading"
	}
	return m.carousel.State().String()
}

func (m Model) stateStyle(styles Styles) lipgloss.Style {
	switch m.carousel.State() {
	case carousel.StateHalted:
		return styles.DangerText
	case carousel.StateTransitioning:
		return styles.AccentText
	case carousel.StateIdle:
		return styles.Text
	default:
		return styles.MutedText
	}
}

func (m Model) renderBody(styles Styles) string {
	switch {
	case m.loading:
		return m.spinner.View() + " " + styles.MutedText.Render("Loading items...")
	case m.err != nil:
		return styles.DangerText.Render("Error: ") + styles.Text.Render(m.err.Error())
	case m.carousel.State() == carousel.StateHalted:
		return styles.DangerText.Render("Carousel halted")
	case m.carousel.Len() == 0:
		return styles.MutedText.Render("Nothing to show")
	}

	if m.carousel.Mode() == carousel.ModeInline {
		return m.renderInline(styles)
	}
	return m.renderCube(styles)
}

func (m Model) renderCube(styles Styles) string {
	dims := m.carousel.Dimensions()
	front, _ := m.carousel.Pane(carousel.SlotFront)
	frontBox := frame(front, dims, styles.FrontPane)

	target, progress, ok := m.anim.current()
	if !ok || target.Mode != carousel.ModeCube {
		return frontBox
	}
	slot := carousel.SlotRight
	if target.Direction == carousel.Left {
		slot = carousel.SlotLeft
	}
	incoming, _ := m.carousel.Pane(slot)
	inBox := frame(incoming, dims, styles.Pane)
	return composeCube(frontBox, inBox, dims.Width, target.Direction, 90*progress)
}

func (m Model) renderInline(styles Styles) string {
	dims := m.carousel.Dimensions()
	panes := m.carousel.Panes()
	boxes := make([]string, len(panes))
	for i, p := range panes {
		style := styles.Pane
		if p.Slot == carousel.SlotFront {
			style = styles.FrontPane
		}
		boxes[i] = frame(p, dims, style)
	}

	offset := carousel.RestOffset
	if target, progress, ok := m.anim.current(); ok && target.Mode == carousel.ModeInline {
		offset += (target.Offset - carousel.RestOffset) * progress
	}
	return composeStrip(boxes, dims.Width, offset)
}

// renderStatusLine shows the prompt, a notice, or the item counter.
func (m Model) renderStatusLine(styles Styles) string {
	if m.prompting {
		return styles.Prompt.Width(m.width).Render(m.prompt.View())
	}
	if m.notice != "" {
		return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.WarningText.Render(m.notice))
	}
	if m.loading || m.carousel.Len() == 0 {
		return ""
	}
	counter := styles.AccentText.Render(fmt.Sprintf("%d / %d", m.carousel.Index()+1, m.carousel.Len()))
	item, _ := m.carousel.Item(m.carousel.Index())
	title := styles.MutedText.Render(truncate(item.Label(), max(0, m.width/2)))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, counter+"  "+title)
}

func (m Model) renderFooter(styles Styles) string {
	var keys string
	if m.prompting {
		keys = m.help.View(promptKeys{Confirm: m.keys.Confirm, Cancel: m.keys.Cancel})
	} else {
		keys = m.help.View(m.keys)
	}
	return styles.Footer.Width(m.width).Render(keys)
}

func (m Model) renderEvents(styles Styles) string {
	width := EventsPanelWidth
	if m.width < LayoutSideEventsWidth {
		width = max(20, m.width-carouselMargin)
	}
	textWidth := width - 4

	entries := m.events.Tail(EventsPanelLines)
	lines := make([]string, 0, EventsPanelLines+1)
	lines = append(lines, styles.AccentText.Render(fmt.Sprintf("Events (%d)", m.events.Total())))
	if len(entries) == 0 {
		lines = append(lines, styles.FaintText.Render("no events yet"))
	}
	for _, e := range entries {
		lines = append(lines, styles.EventStyle(e.Event).Render(truncate(e.String(), textWidth)))
	}
	return styles.Panel.Width(width - 2).Render(strings.Join(lines, "\n"))
}
