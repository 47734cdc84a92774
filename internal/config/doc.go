// Package config handles loading and parsing the cubecarousel configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/cubecarousel/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
//	[carousel]
//	mode = "auto"          # auto, cube or inline
//	width = 58             # preferred pane width in cells
//	height = 20            # preferred pane height in cells
//	duration = "800ms"     # transition duration
//	autoplay = "4s"        # "" or "off" disables autoplay
//	shortest_path = true   # MoveTo takes the shorter way around
//
//	[source]
//	kind = "http"          # demo, file, http or sqlite
//	path = "~/items.toml"  # file and sqlite
//	url = "localhost:8080/mocks"
//
//	[log]
//	path = "~/.local/state/cubecarousel/cubecarousel.log"
//	level = "debug"
//
// Durations use time.ParseDuration syntax. Log levels use slog.Level text
// ("debug", "info", "warn", "error", optionally with an offset like "info+2").
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors and invalid values (unknown mode, bad duration)
//
// Missing config files are NOT an error. Every error message is prefixed so
// the CLI can report it verbatim before the TUI starts.
package config
