package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/cubecarousel/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	mode := flag.String("mode", "", "presentation mode: auto, cube or inline (optional)")
	sourceKind := flag.String("source", "", "item source: demo, file, http or sqlite (optional)")
	from := flag.String("from", "", "file or database path, or feed URL, for -source (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Mode:       *mode,
		SourceKind: *sourceKind,
		SourceArg:  *from,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "cubecarousel: %v\n", err)
		return 1
	}
	return 0
}
