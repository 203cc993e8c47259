package countdown

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/five82/lullaby/internal/notify"
)

// Duration limits accepted by Start.
const (
	MinSeconds = 60
	MaxSeconds = 600 * 60

	// DefaultWarnAt is the remaining time, in seconds, at which the one-shot
	// warning fires.
	DefaultWarnAt = 180
)

// notifyTimeout bounds a single warning delivery.
const notifyTimeout = 30 * time.Second

// ErrDurationOutOfRange is returned by Start for durations outside
// MinSeconds..MaxSeconds.
var ErrDurationOutOfRange = errors.New("duration out of range")

// Status texts shown by the UI header.
const (
	StatusIdle      = "TV sleep timer"
	StatusCancelled = "Timer cancelled"
	StatusShutdown  = "Shutting down..."
)

// State is the controller's lifecycle position.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateCompleting
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateCompleting:
		return "completing"
	default:
		return "idle"
	}
}

// Event reports what a tick did.
type Event int

const (
	EventNone Event = iota
	EventWarning
	EventComplete
)

func (e Event) String() string {
	switch e {
	case EventWarning:
		return "warning"
	case EventComplete:
		return "complete"
	default:
		return "none"
	}
}

// Notifier delivers the low-time warning.
type Notifier interface {
	Notify(ctx context.Context, msg notify.Message) error
}

// Shutdowner performs the terminal shutdown action.
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// Options configure a Controller. Zero values pick defaults.
type Options struct {
	Notifier   Notifier
	Shutdowner Shutdowner
	WarnAt     int            // seconds; zero uses DefaultWarnAt
	Warning    notify.Message // empty uses notify.WarningMessage()
}

// Controller owns the single countdown record. Side effects run after the
// lock is released so a blocking shutdown never holds it.
type Controller struct {
	mu         sync.Mutex
	total      int
	remaining  int
	active     bool
	warned     bool
	state      State
	status     string
	generation uint64

	warnAt     int
	warning    notify.Message
	notifier   Notifier
	shutdowner Shutdowner

	// in-flight warning notifications
	pending sync.WaitGroup
}

// New creates an idle controller.
func New(opts Options) *Controller {
	warnAt := opts.WarnAt
	if warnAt <= 0 {
		warnAt = DefaultWarnAt
	}
	warning := opts.Warning
	if warning.Title == "" && warning.Body == "" {
		warning = notify.WarningMessage()
	}
	return &Controller{
		status:     StatusIdle,
		warnAt:     warnAt,
		warning:    warning,
		notifier:   opts.Notifier,
		shutdowner: opts.Shutdowner,
	}
}

// Start arms a new countdown, replacing any running one.
func (c *Controller) Start(seconds int) error {
	if seconds < MinSeconds || seconds > MaxSeconds {
		return fmt.Errorf("%w: %d seconds, want %d-%d", ErrDurationOutOfRange, seconds, MinSeconds, MaxSeconds)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.total = seconds
	c.remaining = seconds
	c.active = true
	c.warned = false
	c.state = StateRunning
	c.status = StartedStatus(seconds)
	log.Printf("timer started: %d seconds (generation %d)", seconds, c.generation)
	return nil
}

// Tick advances the countdown by one second. Ticks on an inactive timer are
// ignored.
func (c *Controller) Tick(ctx context.Context) Event {
	event, _ := c.advance(ctx, 0, false)
	return event
}

// TickFor advances the countdown only when gen is still the current schedule
// generation. ok is false for a stale schedule.
func (c *Controller) TickFor(ctx context.Context, gen uint64) (event Event, ok bool) {
	return c.advance(ctx, gen, true)
}

func (c *Controller) advance(ctx context.Context, gen uint64, checkGen bool) (Event, bool) {
	c.mu.Lock()
	if checkGen && gen != c.generation {
		c.mu.Unlock()
		return EventNone, false
	}
	if !c.active {
		c.mu.Unlock()
		return EventNone, true
	}

	if c.remaining > 0 {
		c.remaining--
	}

	event := EventNone
	switch {
	case c.remaining == 0:
		c.active = false
		c.state = StateCompleting
		c.status = StatusShutdown
		event = EventComplete
	case c.remaining == c.warnAt && !c.warned:
		c.warned = true
		event = EventWarning
	}
	c.mu.Unlock()

	switch event {
	case EventWarning:
		c.warn(ctx)
	case EventComplete:
		c.complete(ctx)
	}
	return event, true
}

// warn hands the notification to a goroutine; a slow notifier must not hold
// up the tick that triggered it.
func (c *Controller) warn(ctx context.Context) {
	log.Printf("warning threshold reached: %d seconds left", c.warnAt)
	if c.notifier == nil {
		return
	}
	c.pending.Add(1)
	go func() {
		defer c.pending.Done()
		nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
		defer cancel()
		if err := c.notifier.Notify(nctx, c.warning); err != nil {
			log.Printf("warning notification failed: %v", err)
		}
	}()
}

// Wait blocks until every warning notification sent so far has returned.
func (c *Controller) Wait() {
	c.pending.Wait()
}

func (c *Controller) complete(ctx context.Context) {
	log.Printf("countdown complete, shutting down")
	if c.shutdowner == nil {
		return
	}
	if err := c.shutdowner.Shutdown(ctx); err != nil {
		log.Printf("shutdown failed: %v", err)
	}
}

// Cancel stops a running countdown. It reports whether anything was cancelled.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.active {
		return false
	}
	c.generation++
	c.active = false
	c.remaining = 0
	c.state = StateIdle
	c.status = StatusCancelled
	log.Printf("timer cancelled")
	return true
}

// Generation returns the handle of the current tick schedule. Start and Cancel
// bump it, which retires every tick scheduled under the previous value.
func (c *Controller) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// WarnAt returns the warning threshold in seconds.
func (c *Controller) WarnAt() int {
	return c.warnAt
}

// Snapshot returns a copy of the timer record.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Total:      c.total,
		Remaining:  c.remaining,
		Active:     c.active,
		Warned:     c.warned,
		State:      c.state,
		Status:     c.status,
		Generation: c.generation,
	}
}

// Snapshot is a point-in-time view of the timer.
type Snapshot struct {
	Total      int // seconds
	Remaining  int // seconds
	Active     bool
	Warned     bool
	State      State
	Status     string
	Generation uint64
}

// Progress returns the elapsed fraction in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	p := 1 - float64(s.Remaining)/float64(s.Total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Clock formats the remaining time as MM:SS. Minutes are not wrapped into
// hours.
func (s Snapshot) Clock() string {
	return FormatClock(s.Remaining)
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// StartedStatus is the header text for a freshly started countdown.
func StartedStatus(seconds int) string {
	return "Timer: " + DescribeMinutes(seconds/60)
}

// DescribeMinutes renders a duration label such as "45 min", "2 h" or "1h 30m".
func DescribeMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%d h", minutes/60)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
