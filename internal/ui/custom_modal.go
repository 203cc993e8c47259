package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lullaby/internal/countdown"
)

// customModal asks for a duration in minutes.
type customModal struct {
	input textinput.Model
	err   string
}

func newCustomModal(lastMinutes int) customModal {
	ti := textinput.New()
	ti.Placeholder = "Minutes (1-600)"
	ti.CharLimit = 6
	ti.Width = 16
	if lastMinutes > 0 {
		ti.SetValue(strconv.Itoa(lastMinutes))
		ti.CursorEnd()
	}
	ti.Focus()
	return customModal{input: ti}
}

// Update validates on confirm. Invalid input keeps the dialog open with an
// error and never touches the timer.
func (c customModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case kmsg.String() == "ctrl+c":
			return c, tea.Quit, true
		case key.Matches(kmsg, keys.Escape):
			return c, nil, true
		case kmsg.String() == "enter":
			seconds, err := countdown.ParseMinutes(c.input.Value())
			if err != nil {
				c.err = capitalize(err.Error())
				return c, nil, false
			}
			return c, startCmd(seconds, true), true
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		c.err = ""
	}
	return c, cmd, false
}

// View renders the dialog.
func (c customModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Custom time"))
	b.WriteString("\n\n")
	b.WriteString(c.input.View())
	b.WriteString("\n\n")
	if c.err != "" {
		b.WriteString(styles.DangerText.Render(c.err))
	} else {
		b.WriteString(styles.FaintText.Render("enter: set  •  esc: cancel"))
	}
	return placeModal(theme, width, height, 36, b.String())
}
