package cli

import (
	"context"
	"fmt"
	"os"

	"productivity-tracker/internal/domain"
	"productivity-tracker/internal/errors"
	"productivity-tracker/internal/validation"
)

// Screens the replay command can drive
const (
	ScreenTracker = "tracker"
	ScreenSimple  = "simple"
)

// ReplayOptions selects the screen and output format
type ReplayOptions struct {
	Screen string
	Format string

	// IDs replaces the UUID source, for reproducible output
	IDs domain.IDSource
}

// ReplayCommand runs an event script against a screen without a terminal
type ReplayCommand struct {
	app     *App
	opts    ReplayOptions
	entries *validation.EntryValidator
}

// NewReplayCommand creates a new replay command handler
func NewReplayCommand(app *App, opts ReplayOptions) *ReplayCommand {
	if opts.Screen == "" {
		opts.Screen = ScreenTracker
	}
	if opts.Format == "" {
		opts.Format = app.config.Commands.ReplayDefaultFormat
	}

	return &ReplayCommand{
		app:     app,
		opts:    opts,
		entries: validation.NewEntryValidator().WithMaxLength(app.config.Input.MaxLength),
	}
}

// Execute replays the script named by args[0], or stdin when it is absent or "-"
func (c *ReplayCommand) Execute(ctx context.Context, args []string) error {
	switch c.opts.Format {
	case FormatTable, FormatJSON, FormatCSV:
	default:
		return c.app.errors.HandleSimple(errors.NewInvalidInputError("format", c.opts.Format, "supported formats are table, json and csv"))
	}

	steps, err := c.readScript(args)
	if err != nil {
		return c.app.errors.Handle("read script", err)
	}

	var report *Report
	switch c.opts.Screen {
	case ScreenTracker:
		report, err = c.replayTracker(ctx, steps)
	case ScreenSimple:
		report, err = c.replaySimple(ctx, steps)
	default:
		return c.app.errors.HandleSimple(errors.NewInvalidInputError("screen", c.opts.Screen, "supported screens are tracker and simple"))
	}
	if err != nil {
		return err
	}

	return WriteReport(c.app.out, c.opts.Format, report)
}

func (c *ReplayCommand) readScript(args []string) ([]Step, error) {
	if len(args) == 0 || args[0] == "-" {
		return ParseScript(c.app.in)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	return ParseScript(f)
}

func (c *ReplayCommand) replayTracker(ctx context.Context, steps []Step) (*Report, error) {
	screen := c.app.newTrackerScreen(c.opts.IDs)
	screen.Mount(ctx)

	for _, step := range steps {
		if ctx.Err() != nil {
			return nil, c.app.errors.Handle("replay script", errors.NewTimeoutError("replay script", c.app.config.Application.Timeout))
		}

		switch step.Verb {
		case VerbText:
			if err := c.checkLength(validation.EntryTask, step.Arg); err != nil {
				return nil, c.stepError(step, err)
			}
			screen.SetText(ctx, step.Arg)

		case VerbTask:
			if step.Arg != "" {
				if err := c.checkLength(validation.EntryTask, step.Arg); err != nil {
					return nil, c.stepError(step, err)
				}
				screen.SetText(ctx, step.Arg)
			}
			screen.SubmitTask(ctx)

		case VerbGoal:
			if step.Arg != "" {
				if err := c.checkLength(validation.EntryGoal, step.Arg); err != nil {
					return nil, c.stepError(step, err)
				}
				screen.SetText(ctx, step.Arg)
			}
			screen.SubmitGoal(ctx)

		case VerbTime:
			at, err := c.app.times.ParseReminderTime(step.Arg, screen.Now())
			if err != nil {
				return nil, c.stepError(step, err)
			}
			screen.OpenPicker(ctx)
			screen.SelectDateTime(ctx, at)

		case VerbComplete:
			if goal, ok := screen.State().GoalAt(step.Position()); ok {
				screen.CompleteGoal(ctx, goal.ID)
			}

		case VerbDismiss:
			screen.DismissAlert(ctx)

		default:
			return nil, c.stepError(step, unsupportedStep(step, ScreenTracker))
		}
	}

	now := screen.Now()
	reminders, err := c.app.reports.ReminderReport(ctx, now, true)
	if err != nil {
		return nil, c.app.errors.Handle("list pending reminders", err)
	}

	return &Report{
		Screen:    ScreenTracker,
		Tracker:   c.app.reports.SummarizeTracker(screen.State(), now),
		Reminders: reminders,
	}, nil
}

func (c *ReplayCommand) replaySimple(ctx context.Context, steps []Step) (*Report, error) {
	screen := c.app.newSimpleScreen(c.opts.IDs)

	for _, step := range steps {
		switch step.Verb {
		case VerbText:
			if err := c.checkLength(validation.EntryTask, step.Arg); err != nil {
				return nil, c.stepError(step, err)
			}
			screen.SetText(step.Arg)

		case VerbAdd:
			if step.Arg != "" {
				if err := c.checkLength(validation.EntryTask, step.Arg); err != nil {
					return nil, c.stepError(step, err)
				}
				screen.SetText(step.Arg)
			}
			screen.AddTask()

		case VerbToggle:
			if item, ok := screen.State().ItemAt(step.Position()); ok {
				screen.ToggleCompletion(item.ID)
			}

		default:
			return nil, c.stepError(step, unsupportedStep(step, ScreenSimple))
		}
	}

	reminders, err := c.app.reports.ReminderReport(ctx, timeNow(), true)
	if err != nil {
		return nil, c.app.errors.Handle("list pending reminders", err)
	}

	return &Report{
		Screen:    ScreenSimple,
		Simple:    c.app.reports.SummarizeSimple(screen.State()),
		Reminders: reminders,
	}, nil
}

// checkLength applies the configured entry limit the way the text input's
// character limit does in the interactive screens
func (c *ReplayCommand) checkLength(kind, text string) error {
	if text == "" {
		return nil
	}
	return c.entries.ValidateTaskGoalEntry(kind, text)
}

func (c *ReplayCommand) stepError(step Step, err error) error {
	return c.app.errors.Handle(fmt.Sprintf("replay line %d", step.Line), err)
}

func unsupportedStep(step Step, screen string) error {
	return errors.NewInvalidInputError("script", step.Verb, fmt.Sprintf("%s is not available on the %s screen", step.Verb, screen))
}
