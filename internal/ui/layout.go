package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops the
	// state badge and buttons shrink.
	LayoutCompactWidth = 60

	// LayoutBigClockWidth is the minimum width for the block-digit clock.
	LayoutBigClockWidth = 40

	// LayoutMaxProgressWidth caps the progress line on wide screens.
	LayoutMaxProgressWidth = 100
)

// Activity pane limits.
const (
	// ActivityLines is the number of log entries shown under the buttons.
	ActivityLines = 6

	// ActivityMinHeight is the terminal height needed to show the pane.
	ActivityMinHeight = 28
)
