// Package notify delivers user-facing notifications through desktop or
// Android notification commands and in-app callbacks. The audible chime lives
// in the chime subpackage.
package notify

import (
	"context"
	"errors"
	"time"
)

// Message is a single notification.
type Message struct {
	Title   string
	Body    string
	AppName string
	Timeout time.Duration
}

// WarningMessage is the low-time warning sent before shutdown.
func WarningMessage() Message {
	return Message{
		Title:   "Sleep timer",
		Body:    "3 minutes left!",
		AppName: "TV sleep timer",
		Timeout: 10 * time.Second,
	}
}

// Notifier sends a message. Callers treat delivery as best effort.
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Func adapts a plain function to Notifier.
type Func func(ctx context.Context, msg Message) error

// Notify calls f.
func (f Func) Notify(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Multi fans a message out to every notifier. All notifiers are tried; their
// errors are joined.
type Multi []Notifier

// Notify sends msg to each notifier in order.
func (m Multi) Notify(ctx context.Context, msg Message) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
