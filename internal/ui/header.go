package ui

import (
	"fmt"
	"strings"

	"github.com/five82/lullaby/internal/countdown"
)

// badgeWarned is the header badge shown after the warning fired.
const badgeWarned = "warned"

// renderHeader renders the status bar: app name, status text, state badge.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	status := m.snapshot.Status
	if status == "" {
		status = countdown.StatusIdle
	}

	statusStyle := styles.Text.Bold(true)
	if m.snapshot.State == countdown.StateCompleting {
		statusStyle = styles.DangerText
	}

	parts := []string{
		bg.Render("lullaby", styles.Logo),
		bg.Render(truncate(status, maxInt(m.width-30, 12)), statusStyle),
	}
	if !compact {
		badge := headerBadge(m.snapshot)
		parts = append(parts, styles.StatusStyle(badge).Render(strings.ToUpper(badge)))
	}

	content := strings.Join(parts, bg.Spaces(2))
	return styles.Header.Width(m.width).Render(content)
}

// headerBadge maps the timer to a StatusColors key.
func headerBadge(s countdown.Snapshot) string {
	if s.Active && s.Warned {
		return badgeWarned
	}
	return s.State.String()
}

// describeSeconds labels a threshold such as 180 as "3 min".
func describeSeconds(seconds int) string {
	if seconds >= 60 && seconds%60 == 0 {
		return countdown.DescribeMinutes(seconds / 60)
	}
	return fmt.Sprintf("%d s", seconds)
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
