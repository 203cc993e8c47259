package countdown

import (
	"context"
	"log"
	"time"
)

// TickInterval is the wall-clock period of one tick. Every tick takes exactly
// one second off the countdown.
const TickInterval = time.Second

// Scheduler drives a Controller from a wall-clock ticker. It is bound to the
// generation that was current when Run began; Start or Cancel on the
// controller retires it.
type Scheduler struct {
	Controller *Controller
	Interval   time.Duration

	now       func() time.Time
	newTicker func(time.Duration) (<-chan time.Time, func())
}

// NewScheduler returns a scheduler ticking ctl once per interval.
func NewScheduler(ctl *Controller, interval time.Duration) *Scheduler {
	return &Scheduler{Controller: ctl, Interval: interval}
}

// Run blocks until the countdown completes, the schedule is retired, or ctx is
// cancelled. When the goroutine falls behind, missed ticks are replayed one at
// a time so no remaining value is skipped.
func (s *Scheduler) Run(ctx context.Context) error {
	interval := s.Interval
	if interval <= 0 {
		interval = TickInterval
	}
	now := s.now
	if now == nil {
		now = time.Now
	}
	newTicker := s.newTicker
	if newTicker == nil {
		newTicker = func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		}
	}

	gen := s.Controller.Generation()
	// The ticker counts from its creation, so the reference time is taken first.
	last := now()
	ticks, stop := newTicker(interval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticks:
		}

		due := int(now().Sub(last) / interval)
		if due <= 0 {
			continue
		}
		if due > 1 {
			log.Printf("scheduler behind by %d ticks, catching up", due-1)
		}
		last = last.Add(time.Duration(due) * interval)

		for i := 0; i < due; i++ {
			event, ok := s.Controller.TickFor(ctx, gen)
			if !ok || event == EventComplete {
				return nil
			}
			if !s.Controller.Snapshot().Active {
				return nil
			}
		}
	}
}
