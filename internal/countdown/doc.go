// Package countdown implements the sleep timer's countdown controller.
//
// # Overview
//
// A Controller owns exactly one timer record: the total duration, the
// remaining seconds, and whether the countdown is active. It is created once
// by the app package and handed to the UI (or the headless runner) by
// reference; there is no package-level state.
//
// # Lifecycle
//
//	Idle ──Start──> Running ──remaining==0──> Completing
//	  ^               │  │                        │
//	  └────Cancel─────┘  └─remaining==warnAt─┐    └──Start──> Running
//	                        (warning, once)  │
//	                     Running <───────────┘
//
// Start accepts 60..36000 seconds (1..600 minutes) and replaces any running
// countdown. Tick decrements once; when the new value equals the warning
// threshold the Notifier is called, and when it reaches zero the Shutdowner is
// called. Cancel on an idle timer does nothing.
//
// # Schedules
//
// Every Start and Cancel bumps a generation counter. A tick source captures
// the generation when it is armed and passes it to TickFor; ticks from a
// retired generation are dropped. The Bubble Tea UI tags its tea.Tick
// messages this way and the Scheduler uses the same handle for headless runs.
//
// The Scheduler measures wall-clock time between ticker fires and replays any
// missed seconds individually, so the exact-equality warning check cannot be
// skipped by a delayed goroutine.
//
// # Side Effects
//
// Notification and shutdown run after the controller lock is released. The
// warning is sent from its own goroutine so Tick returns at once; Wait joins
// outstanding sends. Shutdown runs inline. Errors from either are logged and
// dropped; nothing is retried.
package countdown
