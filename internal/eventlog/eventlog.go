package eventlog

import (
	"fmt"
	"strings"
	"time"
)

// DefaultCapacity is the number of entries kept when New is given zero.
const DefaultCapacity = 200

// Entry is one recorded carousel event.
type Entry struct {
	Time      time.Time
	Event     string
	Index     int
	Direction string
	Detail    string
}

// String formats the entry as a single log line.
func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Time.Format("15:04:05.000"))
	b.WriteByte(' ')
	fmt.Fprintf(&b, "%-10s", e.Event)
	if e.Direction != "" {
		fmt.Fprintf(&b, " %-5s", e.Direction)
	}
	fmt.Fprintf(&b, " #%d", e.Index+1)
	if e.Detail != "" {
		b.WriteString(" – ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Log keeps the most recent entries in a fixed-size ring.
type Log struct {
	ring  []Entry
	idx   int
	count int
	total uint64
	now   func() time.Time
}

// New returns a Log holding at most capacity entries.
func New(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{ring: make([]Entry, capacity), now: time.Now}
}

// Add records e, stamping it with the current time when Time is zero. The
// oldest entry is overwritten once the ring is full.
func (l *Log) Add(e Entry) {
	if e.Time.IsZero() {
		e.Time = l.now()
	}
	l.ring[l.idx] = e
	l.idx = (l.idx + 1) % len(l.ring)
	if l.count < len(l.ring) {
		l.count++
	}
	l.total++
}

// Entries returns the retained entries, oldest first.
func (l *Log) Entries() []Entry {
	out := make([]Entry, l.count)
	if l.count == len(l.ring) {
		for i := 0; i < l.count; i++ {
			out[i] = l.ring[(l.idx+i)%len(l.ring)]
		}
	} else {
		copy(out, l.ring[:l.count])
	}
	return out
}

// Tail returns at most n of the newest entries, oldest first.
func (l *Log) Tail(n int) []Entry {
	entries := l.Entries()
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}

// Len returns the number of retained entries.
func (l *Log) Len() int { return l.count }

// Total returns the number of entries ever added.
func (l *Log) Total() uint64 { return l.total }
