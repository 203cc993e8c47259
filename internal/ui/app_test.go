package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lullaby/internal/countdown"
	"github.com/five82/lullaby/internal/notify"
	"github.com/five82/lullaby/internal/prefs"
)

type recordingNotifier struct{ calls int }

func (r *recordingNotifier) Notify(context.Context, notify.Message) error {
	r.calls++
	return nil
}

type recordingShutdowner struct{ calls int }

func (r *recordingShutdowner) Shutdown(context.Context) error {
	r.calls++
	return nil
}

type testHarness struct {
	model     Model
	notifier  *recordingNotifier
	shutdown  *recordingShutdowner
	prefsPath string
}

func newTestHarness(t *testing.T) *testHarness {
	t.Helper()
	n := &recordingNotifier{}
	s := &recordingShutdowner{}
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	ctl := countdown.New(countdown.Options{Notifier: n, Shutdowner: s})
	m := New(Options{
		Controller: ctl,
		Presets:    []int{30, 60, 90, 120},
		PrefsPath:  prefsPath,
	})
	h := &testHarness{model: m, notifier: n, shutdown: s, prefsPath: prefsPath}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

// send delivers msg and returns the resulting command.
func (h *testHarness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *testHarness) runes(s string) tea.Cmd {
	return h.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// follow runs cmd and feeds its message back when it is a startMsg.
func (h *testHarness) follow(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(startMsg)
	if !ok {
		t.Fatal("expected command to produce startMsg")
	}
	h.send(msg)
}

func (h *testHarness) tick(n int) {
	gen := h.model.ctl.Generation()
	for i := 0; i < n; i++ {
		h.send(tickMsg{generation: gen})
	}
}

func TestPresetKeyStartsTimer(t *testing.T) {
	h := newTestHarness(t)

	h.follow(t, h.runes("1"))

	snap := h.model.snapshot
	if !snap.Active || snap.Remaining != 1800 {
		t.Fatalf("snapshot = %+v, want active with 1800 seconds", snap)
	}
	if snap.Status != "Timer: 30 min" {
		t.Fatalf("status = %q, want %q", snap.Status, "Timer: 30 min")
	}
}

func TestPresetKeyBeyondPresetsIgnored(t *testing.T) {
	h := newTestHarness(t)

	if cmd := h.runes("8"); cmd != nil {
		t.Fatal("expected no command for a missing preset")
	}
	if h.model.snapshot.Active {
		t.Fatal("timer should stay idle")
	}
}

func TestTickAdvancesAndStaleTickIgnored(t *testing.T) {
	h := newTestHarness(t)
	h.follow(t, h.runes("1"))
	staleGen := h.model.ctl.Generation()

	h.tick(10)
	if got := h.model.snapshot.Remaining; got != 1790 {
		t.Fatalf("remaining = %d, want 1790", got)
	}

	// Restarting retires the old schedule.
	h.follow(t, h.runes("2"))
	h.send(tickMsg{generation: staleGen})
	if got := h.model.snapshot.Remaining; got != 3600 {
		t.Fatalf("stale tick changed remaining to %d, want 3600", got)
	}
}

func TestCancelButton(t *testing.T) {
	h := newTestHarness(t)
	h.follow(t, h.runes("1"))
	h.tick(5)

	h.runes("x")

	snap := h.model.snapshot
	if snap.Active || snap.Remaining != 0 {
		t.Fatalf("snapshot = %+v, want inactive with 0 remaining", snap)
	}
	if snap.Status != countdown.StatusCancelled {
		t.Fatalf("status = %q, want %q", snap.Status, countdown.StatusCancelled)
	}

	// Ticks left over from the cancelled schedule do nothing.
	h.send(tickMsg{generation: snap.Generation - 1})
	if h.shutdown.calls != 0 {
		t.Fatal("shutdown ran after cancel")
	}
}

func TestCancelWhenIdleIsNoop(t *testing.T) {
	h := newTestHarness(t)
	before := h.model.ctl.Generation()

	h.runes("x")

	if h.model.ctl.Generation() != before {
		t.Fatal("cancel on idle timer changed the generation")
	}
	if h.model.snapshot.Status != countdown.StatusIdle {
		t.Fatalf("status = %q, want %q", h.model.snapshot.Status, countdown.StatusIdle)
	}
}

func TestCancelButtonOnlyWhileRunning(t *testing.T) {
	h := newTestHarness(t)

	for _, b := range h.model.buttons() {
		if b.kind == buttonCancel {
			t.Fatal("cancel button shown while idle")
		}
	}

	h.follow(t, h.runes("1"))
	buttons := h.model.buttons()
	if last := buttons[len(buttons)-1]; last.kind != buttonCancel {
		t.Fatalf("last button = %+v, want cancel", last)
	}
	if buttons[0].label != "30 min" || buttons[2].label != "1h 30m" {
		t.Fatalf("unexpected preset labels: %q, %q", buttons[0].label, buttons[2].label)
	}
}

func TestFocusNavigationWraps(t *testing.T) {
	h := newTestHarness(t)
	n := len(h.model.buttons())

	h.send(tea.KeyMsg{Type: tea.KeyLeft})
	if h.model.focus != n-1 {
		t.Fatalf("focus = %d, want %d", h.model.focus, n-1)
	}
	h.send(tea.KeyMsg{Type: tea.KeyRight})
	if h.model.focus != 0 {
		t.Fatalf("focus = %d, want 0", h.model.focus)
	}

	// Enter on the first button starts the first preset.
	h.follow(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))
	if h.model.snapshot.Remaining != 1800 {
		t.Fatalf("remaining = %d, want 1800", h.model.snapshot.Remaining)
	}
}

func TestCustomModalRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "too large", input: "700", wantErr: "Enter 1 to 600 minutes"},
		{name: "zero", input: "0", wantErr: "Enter 1 to 600 minutes"},
		{name: "not a number", input: "abc", wantErr: "Enter a number"},
		{name: "empty", input: "", wantErr: "Enter a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t)
			h.runes("c")
			if h.model.modal == nil {
				t.Fatal("custom dialog did not open")
			}
			if tt.input != "" {
				h.runes(tt.input)
			}

			cmd := h.send(tea.KeyMsg{Type: tea.KeyEnter})

			if cmd != nil {
				t.Fatal("invalid input produced a command")
			}
			modal, ok := h.model.modal.(customModal)
			if !ok {
				t.Fatal("dialog closed on invalid input")
			}
			if modal.err != tt.wantErr {
				t.Fatalf("error = %q, want %q", modal.err, tt.wantErr)
			}
			if h.model.snapshot.Active || h.model.ctl.Generation() != 0 {
				t.Fatal("invalid input touched the timer")
			}
		})
	}
}

func TestCustomModalStartsTimerAndRemembersValue(t *testing.T) {
	h := newTestHarness(t)
	h.runes("c")
	h.runes("45")

	h.follow(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))

	if h.model.modal != nil {
		t.Fatal("dialog should close after a valid entry")
	}
	if got := h.model.snapshot.Remaining; got != 2700 {
		t.Fatalf("remaining = %d, want 2700", got)
	}

	p, err := prefs.Load(h.prefsPath)
	if err != nil {
		t.Fatalf("load prefs: %v", err)
	}
	if p.LastMinutes != 45 {
		t.Fatalf("LastMinutes = %d, want 45", p.LastMinutes)
	}

	// The next dialog is prefilled.
	h.runes("c")
	modal := h.model.modal.(customModal)
	if got := modal.input.Value(); got != "45" {
		t.Fatalf("prefill = %q, want 45", got)
	}
}

func TestCustomModalEscapeCloses(t *testing.T) {
	h := newTestHarness(t)
	h.runes("c")

	h.send(tea.KeyMsg{Type: tea.KeyEsc})

	if h.model.modal != nil {
		t.Fatal("esc did not close the dialog")
	}
	if h.model.snapshot.Active {
		t.Fatal("esc started a timer")
	}
}

func TestWarningBannerAndCompletion(t *testing.T) {
	h := newTestHarness(t)
	h.runes("c")
	h.runes("4")
	h.follow(t, h.send(tea.KeyMsg{Type: tea.KeyEnter}))

	h.tick(59)
	if h.model.banner != "" || h.notifier.calls != 0 {
		t.Fatal("warning fired early")
	}
	h.tick(1)
	h.model.ctl.Wait()
	if h.model.banner != "3 min left before shutdown" {
		t.Fatalf("banner = %q", h.model.banner)
	}
	if h.notifier.calls != 1 {
		t.Fatalf("notifier calls = %d, want 1", h.notifier.calls)
	}
	if badge := headerBadge(h.model.snapshot); badge != badgeWarned {
		t.Fatalf("badge = %q, want %q", badge, badgeWarned)
	}

	h.tick(180)
	h.model.ctl.Wait()
	snap := h.model.snapshot
	if snap.Active || snap.State != countdown.StateCompleting {
		t.Fatalf("snapshot = %+v, want completing", snap)
	}
	if snap.Status != countdown.StatusShutdown {
		t.Fatalf("status = %q, want %q", snap.Status, countdown.StatusShutdown)
	}
	if h.shutdown.calls != 1 || h.notifier.calls != 1 {
		t.Fatalf("shutdown=%d notify=%d, want 1 each", h.shutdown.calls, h.notifier.calls)
	}
}

func TestViewRendersClock(t *testing.T) {
	h := newTestHarness(t)
	h.follow(t, h.runes("1"))

	view := h.model.View()
	if !strings.Contains(view, "Timer: 30 min") {
		t.Fatal("view is missing the status text")
	}
	if !strings.Contains(view, "█") {
		t.Fatal("wide view should use the big clock")
	}

	h.send(tea.WindowSizeMsg{Width: 30, Height: 20})
	if view := h.model.View(); !strings.Contains(view, "30:00") {
		t.Fatal("narrow view should show the plain clock")
	}
}

func TestDescribeSeconds(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{180, "3 min"},
		{3600, "1 h"},
		{45, "45 s"},
		{90, "90 s"},
	}
	for _, tt := range tests {
		if got := describeSeconds(tt.in); got != tt.want {
			t.Errorf("describeSeconds(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBigClockHeight(t *testing.T) {
	lines := strings.Split(bigClock("12:34"), "\n")
	if len(lines) != 5 {
		t.Fatalf("bigClock has %d rows, want 5", len(lines))
	}
}

func TestWarningTickDoesNotWaitForNotifier(t *testing.T) {
	release := make(chan struct{})
	blocking := notify.Func(func(context.Context, notify.Message) error {
		<-release
		return nil
	})
	ctl := countdown.New(countdown.Options{Notifier: blocking, Shutdowner: &recordingShutdowner{}})
	h := &testHarness{model: New(Options{Controller: ctl, PrefsPath: filepath.Join(t.TempDir(), "prefs.toml")})}
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	h.send(startMsg{seconds: 181})

	done := make(chan struct{})
	go func() {
		h.tick(2)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		close(release)
		t.Fatal("Update blocked on the warning notification")
	}
	if h.model.banner == "" {
		t.Fatal("warning banner missing")
	}
	if got := h.model.snapshot.Remaining; got != 179 {
		t.Fatalf("remaining = %d, want 179", got)
	}

	close(release)
	ctl.Wait()
}

func TestFooterShowsKeyHelp(t *testing.T) {
	h := newTestHarness(t)

	footer := h.model.renderFooter()
	if !strings.Contains(footer, "enter") || !strings.Contains(footer, "Press button") {
		t.Fatalf("footer = %q, want key help", footer)
	}
}
