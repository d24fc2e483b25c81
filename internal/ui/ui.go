package ui

import (
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/charmbracelet/log"
)

// Run launches the viewer window and blocks until it closes. Gio needs the
// main goroutine for app.Main, so the event loop runs on its own goroutine
// and the process exits with it.
func Run(state *AppState, settings *Settings, logger *log.Logger) error {
	if logger == nil {
		logger = log.Default()
	}
	if settings == nil {
		settings, _ = LoadSettings("")
	}

	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Sequencer - "+state.Project().Name),
			app.Size(unit.Dp(settings.Width), unit.Dp(settings.Height)),
		)
		ui := New(w, state, settings, logger)
		if err := ui.Run(); err != nil {
			logger.Error("ui", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
	return nil
}
