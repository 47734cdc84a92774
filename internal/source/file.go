package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// File returns a source that reads items from a TOML document:
//
//	[[item]]
//	title = "Marmalade"
//	body = "..."
//	image_url = "https://..."
func File(path string) Source {
	return Func(func(ctx context.Context) ([]Item, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return readFile(path)
	})
}

func readFile(path string) ([]Item, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	var raw struct {
		Items []Item `toml:"item"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	for i := range raw.Items {
		if strings.TrimSpace(raw.Items[i].ID) == "" {
			raw.Items[i].ID = fmt.Sprintf("%s#%d", filepath.Base(resolved), i+1)
		}
	}
	return raw.Items, nil
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
