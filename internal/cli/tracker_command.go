package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"productivity-tracker/internal/tui"
)

// TrackerCommand runs the interactive task/goal screen
type TrackerCommand struct {
	app *App
}

// NewTrackerCommand creates a new tracker command handler
func NewTrackerCommand(app *App) *TrackerCommand {
	return &TrackerCommand{app: app}
}

// Execute runs the program until the user quits or ctx is cancelled
func (c *TrackerCommand) Execute(ctx context.Context, args []string) error {
	closeLog, err := c.app.setupLogging()
	if err != nil {
		return c.app.errors.Handle("start tracker", err)
	}
	defer closeLog()

	cfg := c.app.config
	model := tui.NewTrackerModel(ctx, c.app.newTrackerScreen(nil), c.app.reports, c.app.times, tui.TrackerOptions{
		MaxLength:  cfg.Input.MaxLength,
		Bell:       cfg.Notifications.Bell,
		BellWriter: c.app.out,
	})

	return c.app.runProgram(ctx, "run tracker", model)
}

// runProgram runs model full screen with fired reminders routed into it
func (a *App) runProgram(ctx context.Context, operation string, model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	a.sink.Attach(p)
	defer a.sink.Attach(nil)

	if _, err := p.Run(); err != nil {
		return a.errors.Handle(operation, err)
	}
	return nil
}
