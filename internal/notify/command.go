package notify

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Command shows notifications by running an external program such as
// notify-send or termux-notification.
type Command struct {
	Program string

	run func(ctx context.Context, name string, args ...string) error
}

// NewCommand returns a notifier for program. An empty program yields nil.
func NewCommand(program string) *Command {
	program = strings.TrimSpace(program)
	if program == "" {
		return nil
	}
	return &Command{Program: program}
}

// Notify runs the notification program and waits for it to exit.
func (c *Command) Notify(ctx context.Context, msg Message) error {
	if c == nil || c.Program == "" {
		return nil
	}
	run := c.run
	if run == nil {
		run = runProgram
	}
	args := Args(c.Program, msg)
	if err := run(ctx, c.Program, args...); err != nil {
		return fmt.Errorf("notify via %s: %w", filepath.Base(c.Program), err)
	}
	return nil
}

// Args builds the argument list for the known notification programs. Unknown
// programs receive the title and body as positional arguments.
func Args(program string, msg Message) []string {
	switch filepath.Base(program) {
	case "notify-send":
		var args []string
		if msg.AppName != "" {
			args = append(args, "-a", msg.AppName)
		}
		if msg.Timeout > 0 {
			args = append(args, "-t", strconv.FormatInt(msg.Timeout.Milliseconds(), 10))
		}
		return append(args, msg.Title, msg.Body)
	case "termux-notification":
		return []string{"--title", msg.Title, "--content", msg.Body}
	default:
		return []string{msg.Title, msg.Body}
	}
}

func runProgram(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if detail := strings.TrimSpace(string(out)); detail != "" {
			return fmt.Errorf("%w: %s", err, detail)
		}
		return err
	}
	return nil
}
