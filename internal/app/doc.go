// Package app is the composition root for lullaby.
//
// # Overview
//
// Run loads the config and prefs, builds the shutdown and notification
// collaborators, creates the countdown.Controller and then hands control to
// either the Bubble Tea UI or the headless runner.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/lullaby/config.toml
//	       ├─────> power.New()          Primary and fallback shutdown commands
//	       ├─────> notify.Multi{...}    Command, chime, log (headless)
//	       ├─────> countdown.New()      The single timer record
//	       │
//	       ├─ TUI ──────> ui.Run()            tea.Tick drives the controller
//	       └─ headless ─> runHeadless()       countdown.Scheduler drives it
//
// # Logging
//
// The standard logger is redirected to the configured log file in TUI mode so
// lines never draw over the screen; the UI tails the same file for its
// activity pane. Headless runs log to stderr.
//
// # Error Handling
//
// Fatal (returned from Run):
//   - Config file unreadable or not valid TOML
//   - Log file cannot be created
//   - -minutes outside 1-600
//
// Recoverable (logged, swallowed):
//   - Notification command or chime failures
//   - Shutdown command failures after the fallback
//   - Prefs read or write failures
//
// Cancelling the context in headless mode cancels the timer; no shutdown is
// attempted.
package app
