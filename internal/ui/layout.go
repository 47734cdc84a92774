package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutSideEventsWidth is the minimum width to show the event log beside
	// the carousel instead of below it.
	LayoutSideEventsWidth = 110

	// EventsPanelWidth is the width of the side event log.
	EventsPanelWidth = 44

	// EventsPanelLines is the number of event lines shown.
	EventsPanelLines = 8
)

// carouselMargin is the horizontal space kept free around the carousel.
const carouselMargin = 4

// Timing constants.
const (
	// FetchTimeout bounds a single data source fetch.
	FetchTimeout = 10 * time.Second
)
