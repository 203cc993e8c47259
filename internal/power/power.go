// Package power triggers the device shutdown at the end of a countdown.
package power

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

// Default commands: an Android shutdown intent, then a generic power-off.
var (
	DefaultPrimary  = []string{"am", "start", "-a", "android.intent.action.ACTION_REQUEST_SHUTDOWN"}
	DefaultFallback = []string{"reboot", "-p"}
)

var errEmptyCommand = errors.New("empty command")

// Runner executes a command and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, argv []string) error
}

// Options configure a Shutdowner.
type Options struct {
	Primary  []string
	Fallback []string
	DryRun   bool
	Runner   Runner // nil uses os/exec
}

// Shutdowner runs the primary shutdown command and, if it fails, the fallback
// once. It never retries.
type Shutdowner struct {
	primary  []string
	fallback []string
	dryRun   bool
	runner   Runner
}

// New returns a Shutdowner; empty command lists use the defaults.
func New(opts Options) *Shutdowner {
	s := &Shutdowner{
		primary:  clean(opts.Primary),
		fallback: clean(opts.Fallback),
		dryRun:   opts.DryRun,
		runner:   opts.Runner,
	}
	if len(s.primary) == 0 {
		s.primary = append([]string(nil), DefaultPrimary...)
	}
	if len(s.fallback) == 0 {
		s.fallback = append([]string(nil), DefaultFallback...)
	}
	if s.runner == nil {
		s.runner = execRunner{}
	}
	return s
}

// Shutdown attempts the primary command, then the fallback. The returned error
// is informational only; callers log it and carry on.
func (s *Shutdowner) Shutdown(ctx context.Context) error {
	if s.dryRun {
		log.Printf("dry run: would run %q, fallback %q", strings.Join(s.primary, " "), strings.Join(s.fallback, " "))
		return nil
	}

	err := s.runner.Run(ctx, s.primary)
	if err == nil {
		return nil
	}
	log.Printf("primary shutdown %q failed: %v", s.primary[0], err)

	if fbErr := s.runner.Run(ctx, s.fallback); fbErr != nil {
		return fmt.Errorf("fallback shutdown %q: %w", s.fallback[0], fbErr)
	}
	return nil
}

// Commands returns copies of the configured primary and fallback commands.
func (s *Shutdowner) Commands() (primary, fallback []string) {
	return append([]string(nil), s.primary...), append([]string(nil), s.fallback...)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return errEmptyCommand
	}
	out, err := exec.CommandContext(ctx, argv[0], argv[1:]...).CombinedOutput()
	if err != nil {
		if detail := strings.TrimSpace(string(out)); detail != "" {
			return fmt.Errorf("%w: %s", err, detail)
		}
		return err
	}
	return nil
}

func clean(argv []string) []string {
	out := make([]string, 0, len(argv))
	for _, arg := range argv {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
