// Package app provides the orchestration layer for the cubecarousel application.
//
// # Overview
//
// This package wires together configuration, preferences, logging, the item
// source and the UI. It is the composition root where all dependencies are
// initialized and connected.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read config.toml
//	       ├─────> applyOverrides()    Fold in command-line flags
//	       ├─────> openLogger()        slog text handler on the log file
//	       ├─────> prefs.Open().Load() Theme and event log visibility
//	       ├─────> source.New()        Demo, file, HTTP feed or SQLite
//	       ├─────> ui.DetectMode()     Cube or inline from the terminal profile
//	       └─────> ui.Run()            Start TUI (blocks)
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Configuration file invalid
//   - Log file cannot be opened
//   - Source misconfigured (missing path or URL, unknown kind)
//
// Recoverable errors (shown in the UI and logged):
//   - Item fetch failures. The carousel stays unloaded; fetches are not retried.
//
// # Usage Example
//
//	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer cancel()
//
//	if err := app.Run(ctx, app.Options{SourceKind: "file", SourceArg: "items.toml"}); err != nil {
//		log.Fatalf("cubecarousel failed: %v", err)
//	}
package app
