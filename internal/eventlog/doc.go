// Package eventlog records recent carousel events for on-screen display.
//
// # Ring Buffer
//
// Log is a circular buffer of fixed capacity. Add writes at the current
// index and advances it, wrapping at capacity; once the buffer is full the
// oldest entry is overwritten. Entries reads the buffer back starting from
// the current index so results are always oldest first.
//
// Memory is O(capacity) regardless of how many events the session produces.
//
// # Usage
//
//	log := eventlog.New(100)
//	c.On(carousel.EventAfterMove, func(p carousel.Payload[source.Item]) {
//		log.Add(eventlog.Entry{Event: p.Event.String(), Index: p.Index})
//	})
//
// Log is not synchronized; the TUI only touches it from its update loop.
package eventlog
