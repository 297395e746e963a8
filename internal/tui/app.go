// Package tui is the terminal editor for a skyset document. It turns keys
// into controller commands and polls the controller for reloads.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/skyset/internal/app"
	"github.com/dbmrq/skyset/internal/config"
	"github.com/dbmrq/skyset/internal/field"
	"github.com/dbmrq/skyset/internal/tui/components"
)

// Model is the Bubble Tea model for the skyset editor.
type Model struct {
	ctrl *app.Controller
	keys KeyMap

	// Components
	header      *components.Header
	fields      *components.FieldList
	preview     *components.Preview
	statusBar   *components.StatusBar
	helpOverlay *components.HelpOverlay

	// Polling
	pollInterval time.Duration
	tickInterval time.Duration
	lastReload   time.Time
	now          func() time.Time
	watcher      *Watcher

	// State
	notice    string
	lastError string

	// Window dimensions
	width  int
	height int

	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithPollInterval sets how often the document is reloaded.
func WithPollInterval(d time.Duration) Option {
	return func(m *Model) {
		m.pollInterval = d
	}
}

// WithTickInterval sets the UI refresh interval.
func WithTickInterval(d time.Duration) Option {
	return func(m *Model) {
		m.tickInterval = d
	}
}

// WithWatcher reloads whenever w reports a change.
func WithWatcher(w *Watcher) Option {
	return func(m *Model) {
		m.watcher = w
	}
}

// WithClock replaces the clock used for the poll timer.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New creates an editor model driving ctrl.
func New(ctrl *app.Controller, opts ...Option) *Model {
	keys := DefaultKeyMap()
	m := &Model{
		ctrl:         ctrl,
		keys:         keys,
		header:       components.NewHeader(),
		fields:       components.NewFieldList(),
		preview:      components.NewPreview(),
		statusBar:    components.NewStatusBar(),
		helpOverlay:  components.NewHelpOverlay(keys),
		pollInterval: config.DefaultPollInterval,
		tickInterval: config.DefaultTickInterval,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.lastReload = m.now()
	m.sync()
	return m
}

// Init starts the tick and, when configured, the file watch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tickInterval)}
	if m.watcher != nil {
		cmds = append(cmds, waitForChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.sync()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	// The help overlay captures input while visible.
	if m.helpOverlay.IsVisible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.helpOverlay.Update(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.statusBar.SetWidth(msg.Width)
		half := msg.Width / 2
		m.fields.SetWidth(half)
		m.preview.SetWidth(msg.Width - half)
		m.helpOverlay.SetSize(min(msg.Width, 72))
		return nil

	case TickMsg:
		if msg.Time.Sub(m.lastReload) >= m.pollInterval {
			m.reload(false)
		}
		return tickCmd(m.tickInterval)

	case FileChangedMsg:
		m.reload(false)
		return waitForChange(m.watcher)

	case WatchErrorMsg:
		m.lastError = "watch: " + msg.Err.Error()
		return waitForChange(m.watcher)

	case components.HelpClosedMsg:
		return nil

	case QuitMsg:
		m.quitting = true
		return tea.Quit
	}

	return nil
}

// handleKeyPress maps keys to controller commands. Plain letter shortcuts
// only act while the selected field is unchanged; otherwise they are typed.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	editing := m.ctrl.IsEditing()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Save):
		m.save()
		return nil
	case key.Matches(msg, m.keys.Reload):
		m.reload(true)
		return nil
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return nil
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Next()
		return nil
	case key.Matches(msg, m.keys.Previous):
		m.ctrl.Previous()
		return nil
	case key.Matches(msg, m.keys.Apply):
		m.apply()
		return nil
	case key.Matches(msg, m.keys.Delete):
		m.ctrl.PopChar()
		return nil
	}

	if !editing {
		switch {
		case key.Matches(msg, m.keys.LetterSave):
			m.save()
			return nil
		case key.Matches(msg, m.keys.LetterReload):
			m.reload(true)
			return nil
		case key.Matches(msg, m.keys.LetterReset):
			m.reset()
			return nil
		case key.Matches(msg, m.keys.LetterQuit):
			m.quitting = true
			return tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.helpOverlay.Toggle()
			return nil
		}
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		for _, r := range msg.Runes {
			m.ctrl.PushChar(r)
		}
	case tea.KeySpace:
		m.ctrl.PushChar(' ')
	}
	return nil
}

func (m *Model) apply() {
	id := m.ctrl.Field()
	if err := m.ctrl.Apply(); err != nil {
		m.lastError = err.Error()
		return
	}
	m.lastError = ""
	m.notice = "applied " + id.Label()
}

func (m *Model) save() {
	if err := m.ctrl.Save(); err != nil {
		m.lastError = err.Error()
		return
	}
	m.lastError = ""
	m.notice = "saved " + m.ctrl.Document().UpdatedAt
}

// reload asks the controller to reload and restarts the poll timer.
func (m *Model) reload(manual bool) {
	changed, err := m.ctrl.Reload()
	m.lastReload = m.now()
	switch {
	case err != nil:
		m.lastError = err.Error()
	case changed:
		m.lastError = ""
		m.notice = "reloaded external changes"
	case manual:
		m.lastError = ""
		m.notice = "no changes on disk"
	}
}

func (m *Model) reset() {
	m.ctrl.Reset()
	m.lastError = ""
	m.notice = "reset to defaults (not saved)"
}

// sync copies controller state into the components.
func (m *Model) sync() {
	doc := m.ctrl.Document()

	m.header.SetData(components.HeaderData{
		Path:      m.ctrl.Path(),
		Origin:    doc.Origin,
		UpdatedAt: doc.UpdatedAt,
	})

	current := m.ctrl.Field()
	rows := make([]components.FieldRow, 0, field.Count)
	for _, id := range field.Order() {
		row := components.FieldRow{
			Label:  id.Label(),
			Value:  field.Get(doc, id),
			Toggle: id.IsToggle(),
			Color:  id.IsColor(),
		}
		if id == current {
			row.Selected = true
			row.Input = m.ctrl.Input()
			row.Editing = m.ctrl.IsEditing()
		}
		rows = append(rows, row)
	}
	m.fields.SetRows(rows)

	m.preview.SetDocument(doc)

	m.statusBar.SetData(components.StatusBarData{
		Editing:    m.ctrl.IsEditing(),
		Notice:     m.notice,
		Error:      m.lastError,
		LastReload: m.lastReload,
		Shortcuts:  components.ShortcutsFromBindings(m.keys.ShortHelp()...),
	})
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.fields.View(), m.preview.View())
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.statusBar.View(),
	)

	if m.helpOverlay.IsVisible() {
		overlay := m.helpOverlay.View()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	return view
}
