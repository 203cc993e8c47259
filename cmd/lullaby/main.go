package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/lullaby/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/lullaby/config.toml)")
	prefsPath := flag.String("prefs", "", "override prefs path (optional)")
	minutes := flag.Int("minutes", 0, "start a countdown of N minutes (1-600) immediately")
	headless := flag.Bool("headless", false, "run without the UI; requires -minutes")
	dryRun := flag.Bool("dry-run", false, "log the shutdown commands instead of running them")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Minutes:    *minutes,
		Headless:   *headless,
		DryRun:     *dryRun,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "lullaby: %v\n", err)
		return 1
	}
	return 0
}
