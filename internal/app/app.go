package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lullaby/internal/config"
	"github.com/five82/lullaby/internal/countdown"
	"github.com/five82/lullaby/internal/notify"
	"github.com/five82/lullaby/internal/notify/chime"
	"github.com/five82/lullaby/internal/power"
	"github.com/five82/lullaby/internal/prefs"
	"github.com/five82/lullaby/internal/ui"
)

// ErrMinutesRequired is returned when headless mode has no duration.
var ErrMinutesRequired = errors.New("headless mode needs -minutes")

// Options configure the lullaby application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/lullaby/prefs.toml
	Minutes    int    // start a countdown immediately; zero waits for the user
	Headless   bool
	DryRun     bool // log the shutdown commands instead of running them
}

// Run boots lullaby until the countdown ends, the user quits, or the context
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.DryRun {
		cfg.Shutdown.DryRun = true
	}

	if opts.Headless {
		if opts.Minutes <= 0 {
			return ErrMinutesRequired
		}
		ctl := newController(cfg, true)
		return runHeadless(ctx, ctl, opts.Minutes, countdown.TickInterval)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logFile, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctl := newController(cfg, false)
	if opts.Minutes > 0 {
		if err := ctl.Start(opts.Minutes * 60); err != nil {
			return fmt.Errorf("start timer: %w", err)
		}
	}

	uiOpts := ui.Options{
		Context:     ctx,
		Controller:  ctl,
		Presets:     cfg.Presets,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		LastMinutes: userPrefs.LastMinutes,
		LogFile:     cfg.LogFile,
	}
	err = ui.Run(uiOpts)
	ctl.Wait()
	return err
}

// newController wires the shutdown and notification collaborators from cfg.
// Headless runs also echo the warning to the log, which goes to stderr there.
func newController(cfg config.Config, headless bool) *countdown.Controller {
	shutdowner := power.New(power.Options{
		Primary:  cfg.Shutdown.Primary,
		Fallback: cfg.Shutdown.Fallback,
		DryRun:   cfg.Shutdown.DryRun,
	})
	primary, fallback := shutdowner.Commands()
	log.Printf("shutdown via %q, fallback %q (dry run %t)", strings.Join(primary, " "), strings.Join(fallback, " "), cfg.Shutdown.DryRun)

	notifiers := notify.Multi{notify.NewCommand(cfg.Notify.Command)}
	if cfg.Notify.Chime {
		notifiers = append(notifiers, chime.New())
	}
	if headless {
		notifiers = append(notifiers, notify.Func(logWarning))
	}

	return countdown.New(countdown.Options{
		Notifier:   notifiers,
		Shutdowner: shutdowner,
		WarnAt:     cfg.WarningSeconds,
		Warning:    warningMessage(cfg),
	})
}

// warningMessage builds the low-time notification for the configured
// threshold.
func warningMessage(cfg config.Config) notify.Message {
	msg := notify.WarningMessage()
	if cfg.Notify.AppName != "" {
		msg.AppName = cfg.Notify.AppName
	}
	if cfg.Notify.Timeout > 0 {
		msg.Timeout = cfg.Notify.Timeout
	}
	switch secs := cfg.WarningSeconds; {
	case secs == 60:
		msg.Body = "1 minute left!"
	case secs > 0 && secs%60 == 0:
		msg.Body = fmt.Sprintf("%d minutes left!", secs/60)
	case secs > 0:
		msg.Body = fmt.Sprintf("%d seconds left!", secs)
	}
	return msg
}

func logWarning(_ context.Context, msg notify.Message) error {
	log.Printf("%s: %s", msg.Title, msg.Body)
	return nil
}

// openLog sends the standard logger to path so log lines never draw over the
// TUI.
func openLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetFlags(log.LstdFlags)
	return f, nil
}
