package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTimer renders the clock, the progress line and the warning banner.
func (m Model) renderTimer() string {
	styles := m.theme.Styles()

	clockText := m.snapshot.Clock()
	var clock string
	if m.width >= LayoutBigClockWidth {
		clock = styles.Clock.Render(bigClock(clockText))
	} else {
		clock = styles.Clock.Render(clockText)
	}

	lines := []string{
		clock,
		"",
		m.progress.ViewAs(m.snapshot.Progress()),
	}
	if m.banner != "" {
		lines = append(lines, "", styles.Banner.Render(m.banner))
	}
	if m.flash != "" {
		lines = append(lines, "", styles.DangerText.Render(m.flash))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

// renderButtons renders the preset, custom and cancel buttons in one row,
// wrapping onto a second row on narrow screens.
func (m Model) renderButtons() string {
	styles := m.theme.Styles()
	buttons := m.buttons()
	focus := clampFocus(m.focus, len(buttons))

	rendered := make([]string, len(buttons))
	for i, b := range buttons {
		style := styles.Button
		if b.kind == buttonCancel {
			style = style.BorderForeground(lipgloss.Color(m.theme.Danger))
		}
		if i == focus {
			style = styles.ButtonFocused
			if b.kind == buttonCancel {
				style = style.Background(lipgloss.Color(m.theme.Danger))
			}
		}
		rendered[i] = style.Render(b.label)
	}

	var rows []string
	var row []string
	rowWidth := 0
	for _, r := range rendered {
		w := lipgloss.Width(r) + 1
		if len(row) > 0 && rowWidth+w > m.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, r, " ")
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	block := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, block)
}

// renderActivity renders recent log entries when there is room for them.
func (m Model) renderActivity() string {
	if m.logFile == "" || len(m.activity) == 0 || m.height < ActivityMinHeight {
		return ""
	}
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.MutedText.Bold(true).Render("Activity"))
	for _, e := range m.activity {
		b.WriteString("\n")
		stamp := "        "
		if !e.Time.IsZero() {
			stamp = e.Time.Format("15:04:05")
		}
		b.WriteString(styles.FaintText.Render(stamp))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(truncate(e.Message, maxInt(m.width-12, 10))))
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.Width(m.width).Render(m.help.View(m.keys))
}
