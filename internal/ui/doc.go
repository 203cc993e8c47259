// Package ui provides the Bubble Tea terminal interface for the sleep timer.
//
// # Screen
//
//	┌──────────────────────────────────────────────┐
//	│ lullaby  Timer: 30 min               RUNNING │  header
//	│                                              │
//	│              ███ ███   ███ ███               │  clock (MM:SS)
//	│               ...                            │
//	│      ━━━━━━━━━━━━━━━━━━━━━────────────        │  progress line
//	│      [ 3 min left before shutdown ]          │  banner after the warning
//	│                                              │
//	│  30 min  1 h  1h 30m  2 h  Custom  Cancel    │  buttons
//	│                                              │
//	│  Activity                                    │  recent log entries
//	│  ←/h previous • →/l next • enter press ...   │  short help
//	└──────────────────────────────────────────────┘
//
// The layout is built for a TV remote: arrows move between buttons, enter
// presses, esc closes dialogs. Digits start presets directly.
//
// # Ticks
//
// The model never owns the timer. It holds a *countdown.Controller and asks
// it to Start, Cancel and TickFor. Each tea.Tick message carries the
// controller generation that was current when the schedule was armed; when a
// new countdown starts or the timer is cancelled, ticks from the old schedule
// are discarded, so two tick streams never run at once.
//
// # Custom Time
//
// The custom dialog accepts 1-600 minutes. Invalid input ("abc", "700") keeps
// the dialog open with an error and leaves the timer untouched. The last
// accepted value is saved to prefs and prefilled next time.
package ui
