package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/five82/lullaby/internal/countdown"
)

// runHeadless counts down minutes without a UI. It returns once the shutdown
// has been attempted, or after cancelling the timer when ctx ends first.
func runHeadless(ctx context.Context, ctl *countdown.Controller, minutes int, interval time.Duration) error {
	if err := ctl.Start(minutes * 60); err != nil {
		return fmt.Errorf("start timer: %w", err)
	}
	log.Printf("%s, %s until shutdown", countdown.StartedStatus(minutes*60), countdown.FormatClock(minutes*60))

	sched := countdown.NewScheduler(ctl, interval)
	err := sched.Run(ctx)
	ctl.Wait()
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		left := ctl.Snapshot().Remaining
		if ctl.Cancel() {
			log.Printf("interrupted with %s left", countdown.FormatClock(left))
		}
		return nil
	}
	return err
}
