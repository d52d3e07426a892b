package cli

import (
	"context"

	"productivity-tracker/internal/tui"
)

// SimpleCommand runs the interactive simple task screen
type SimpleCommand struct {
	app *App
}

// NewSimpleCommand creates a new simple command handler
func NewSimpleCommand(app *App) *SimpleCommand {
	return &SimpleCommand{app: app}
}

// Execute runs the program until the user quits or ctx is cancelled
func (c *SimpleCommand) Execute(ctx context.Context, args []string) error {
	closeLog, err := c.app.setupLogging()
	if err != nil {
		return c.app.errors.Handle("start simple screen", err)
	}
	defer closeLog()

	model := tui.NewSimpleModel(c.app.newSimpleScreen(nil), c.app.config.Input.MaxLength)
	return c.app.runProgram(ctx, "run simple screen", model)
}
