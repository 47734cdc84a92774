package source

import (
	"context"
	"fmt"
	"strings"
)

// Item is one carousel entry.
type Item struct {
	ID       string `json:"id" toml:"id"`
	Title    string `json:"title" toml:"title"`
	Body     string `json:"body" toml:"body"`
	ImageURL string `json:"imgUrl" toml:"image_url"`
}

// Label returns the title, falling back to the id.
func (i Item) Label() string {
	if t := strings.TrimSpace(i.Title); t != "" {
		return t
	}
	return i.ID
}

// Source acquires the full data set once. Fetch is never retried.
type Source interface {
	Fetch(ctx context.Context) ([]Item, error)
}

// Func adapts a function to Source.
type Func func(ctx context.Context) ([]Item, error)

// Fetch calls f.
func (f Func) Fetch(ctx context.Context) ([]Item, error) {
	return f(ctx)
}

// Kind names a data source backend.
type Kind string

const (
	KindDemo   Kind = "demo"
	KindFile   Kind = "file"
	KindHTTP   Kind = "http"
	KindSQLite Kind = "sqlite"
)

// Spec selects and locates a source.
type Spec struct {
	Kind Kind
	Path string
	URL  string
}

// New builds the Source described by spec.
func New(spec Spec) (Source, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(string(spec.Kind)))) {
	case "", KindDemo:
		return Demo(), nil
	case KindFile:
		if strings.TrimSpace(spec.Path) == "" {
			return nil, fmt.Errorf("file source: path is empty")
		}
		return File(spec.Path), nil
	case KindHTTP:
		client, err := NewClient(spec.URL)
		if err != nil {
			return nil, err
		}
		return client, nil
	case KindSQLite:
		if strings.TrimSpace(spec.Path) == "" {
			return nil, fmt.Errorf("sqlite source: path is empty")
		}
		return SQLite(spec.Path), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", spec.Kind)
	}
}
