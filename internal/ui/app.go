package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lullaby/internal/countdown"
	"github.com/five82/lullaby/internal/logtail"
	"github.com/five82/lullaby/internal/prefs"
)

// buttonKind distinguishes the on-screen buttons.
type buttonKind int

const (
	buttonPreset buttonKind = iota
	buttonCustom
	buttonCancel
)

type button struct {
	kind    buttonKind
	label   string
	minutes int // presets only
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Controller  *countdown.Controller
	Presets     []int // minutes
	ThemeName   string
	PrefsPath   string
	LastMinutes int
	LogFile     string // activity pane source; empty hides the pane
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	ctl       *countdown.Controller
	presets   []int
	prefsPath string
	logFile   string

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	progress progress.Model
	width    int
	height   int
	ready    bool
	focus    int

	// Timer state
	snapshot    countdown.Snapshot
	banner      string
	flash       string
	lastMinutes int

	// Activity pane
	activity []logtail.Entry

	// Overlays
	modal    Modal
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme()
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	ctl := opts.Controller
	if ctl == nil {
		ctl = countdown.New(countdown.Options{})
	}

	theme := GetTheme(themeName)
	return Model{
		ctx:         ctx,
		ctl:         ctl,
		presets:     append([]int(nil), opts.Presets...),
		prefsPath:   prefsPath,
		logFile:     opts.LogFile,
		theme:       theme,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		progress:    newProgress(theme),
		snapshot:    ctl.Snapshot(),
		lastMinutes: opts.LastMinutes,
	}
}

func newProgress(theme Theme) progress.Model {
	return progress.New(
		progress.WithGradient(theme.ProgressStart, theme.ProgressEnd),
		progress.WithoutPercentage(),
	)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if cmd := m.activityCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	// A controller started before the UI (e.g. from a CLI flag) needs a schedule.
	if m.snapshot.Active {
		cmds = append(cmds, tickCmd(m.snapshot.Generation))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.progress.Width = progressWidth(msg.Width)
		return m, nil

	case tickMsg:
		return m.handleTick(msg)

	case startMsg:
		return m.startTimer(msg)

	case activityMsg:
		m.activity = msg
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	m.flash = ""
	buttons := m.buttons()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.progress = newProgress(m.theme)
		m.progress.Width = progressWidth(m.width)
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.focus = (m.focus - 1 + len(buttons)) % len(buttons)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.focus = (m.focus + 1) % len(buttons)
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.press(buttons[clampFocus(m.focus, len(buttons))])

	case key.Matches(msg, m.keys.Preset):
		idx := int(msg.Runes[0] - '1')
		if idx >= 0 && idx < len(m.presets) {
			return m.press(button{kind: buttonPreset, minutes: m.presets[idx]})
		}
		return m, nil

	case key.Matches(msg, m.keys.Custom):
		return m.press(button{kind: buttonCustom})

	case key.Matches(msg, m.keys.Cancel):
		return m.press(button{kind: buttonCancel})
	}

	return m, nil
}

// press performs a button's action.
func (m Model) press(b button) (tea.Model, tea.Cmd) {
	switch b.kind {
	case buttonPreset:
		return m, startCmd(b.minutes*60, false)
	case buttonCustom:
		m.modal = newCustomModal(m.lastMinutes)
		return m, nil
	case buttonCancel:
		if m.ctl.Cancel() {
			m.snapshot = m.ctl.Snapshot()
			m.banner = ""
			m.focus = clampFocus(m.focus, len(m.buttons()))
			return m, m.activityCmd()
		}
	}
	return m, nil
}

// startTimer arms a countdown. Start bumps the controller generation, so
// ticks still in flight for an earlier countdown are dropped in handleTick.
func (m Model) startTimer(msg startMsg) (tea.Model, tea.Cmd) {
	if err := m.ctl.Start(msg.seconds); err != nil {
		m.flash = capitalize(err.Error())
		return m, nil
	}
	m.snapshot = m.ctl.Snapshot()
	m.banner = ""
	if msg.custom {
		m.lastMinutes = msg.seconds / 60
		m.savePrefs()
	}
	return m, tea.Batch(tickCmd(m.snapshot.Generation), m.activityCmd())
}

// handleTick advances the countdown for ticks of the current schedule.
func (m Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	event, ok := m.ctl.TickFor(m.ctx, msg.generation)
	if !ok {
		return m, nil
	}
	m.snapshot = m.ctl.Snapshot()

	switch event {
	case countdown.EventWarning:
		m.banner = fmt.Sprintf("%s left before shutdown", describeSeconds(m.ctl.WarnAt()))
		return m, tea.Batch(tickCmd(msg.generation), m.activityCmd())
	case countdown.EventComplete:
		m.banner = ""
		m.focus = 0
		return m, m.activityCmd()
	}

	if !m.snapshot.Active {
		return m, nil
	}
	return m, tickCmd(msg.generation)
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, LastMinutes: m.lastMinutes}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		log.Printf("save prefs: %v", err)
	}
}

// buttons lists the visible buttons; Cancel shows only while a timer runs.
func (m Model) buttons() []button {
	out := make([]button, 0, len(m.presets)+2)
	for _, minutes := range m.presets {
		out = append(out, button{kind: buttonPreset, label: countdown.DescribeMinutes(minutes), minutes: minutes})
	}
	out = append(out, button{kind: buttonCustom, label: "Custom"})
	if m.snapshot.Active {
		out = append(out, button{kind: buttonCancel, label: "Cancel timer"})
	}
	return out
}

func clampFocus(focus, n int) int {
	if n <= 0 || focus < 0 {
		return 0
	}
	if focus >= n {
		return n - 1
	}
	return focus
}

func progressWidth(width int) int {
	w := width - 8
	if w > LayoutMaxProgressWidth {
		w = LayoutMaxProgressWidth
	}
	if w < 10 {
		w = 10
	}
	return w
}

// renderMain renders the full screen.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderTimer())
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons())

	if pane := m.renderActivity(); pane != "" {
		b.WriteString("\n\n")
		b.WriteString(pane)
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Messages

type tickMsg struct {
	generation uint64
	at         time.Time
}

type startMsg struct {
	seconds int
	custom  bool
}

type activityMsg []logtail.Entry

// Commands

func tickCmd(generation uint64) tea.Cmd {
	return tea.Tick(countdown.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg{generation: generation, at: t}
	})
}

func startCmd(seconds int, custom bool) tea.Cmd {
	return func() tea.Msg {
		return startMsg{seconds: seconds, custom: custom}
	}
}

func (m Model) activityCmd() tea.Cmd {
	if m.logFile == "" {
		return nil
	}
	path := m.logFile
	return func() tea.Msg {
		entries, err := logtail.Tail(path, ActivityLines)
		if err != nil {
			log.Printf("read activity: %v", err)
			return nil
		}
		return activityMsg(entries)
	}
}

// Run starts the Bubble Tea program. Cancelling the context ends it without
// an error.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && m.ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
