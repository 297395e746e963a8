package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbmrq/skyset/internal/app"
	"github.com/dbmrq/skyset/internal/config"
	"github.com/dbmrq/skyset/internal/logging"
)

// Run starts the editor for ctrl and blocks until the operator quits.
func Run(ctrl *app.Controller, settings *config.Settings) error {
	opts := []Option{
		WithPollInterval(settings.PollInterval),
		WithTickInterval(settings.TickInterval),
	}

	if settings.Watch {
		w := NewWatcher(ctrl.Path())
		if err := w.Start(); err != nil {
			// Polling still picks up changes.
			logging.Warn("file watch unavailable", "path", ctrl.Path(), "error", err)
		} else {
			defer w.Stop()
			opts = append(opts, WithWatcher(w))
		}
	}

	p := tea.NewProgram(New(ctrl, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
