package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"productivity-tracker/internal/config"
	"productivity-tracker/internal/domain"
	"productivity-tracker/internal/logging"
	"productivity-tracker/internal/notify"
	"productivity-tracker/internal/repository/sqlite"
	"productivity-tracker/internal/screen/simpletask"
	"productivity-tracker/internal/screen/taskgoal"
	"productivity-tracker/internal/services"
	"productivity-tracker/internal/tui"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	config    *config.Config
	ledger    sqlite.Repository
	scheduler *notify.LocalScheduler
	sink      *tui.ProgramSink

	times   services.TimeService
	reports services.ReportingService
	errors  *ErrorHandler

	in  io.Reader
	out io.Writer
}

// NewApp creates a new CLI application instance with dependency injection.
// The App owns ledger from here on and closes it in Close
func NewApp(cfg *config.Config, ledger sqlite.Repository) *App {
	sink := tui.NewProgramSink()
	scheduler := notify.NewLocalScheduler(ledger,
		notify.PermissionStatus(cfg.Notifications.Permission),
		notify.WithSink(sink),
		notify.WithClock(func() time.Time { return timeNow() }),
	)
	times := services.NewTimeService(cfg.Time.InputFormat, cfg.Time.DisplayFormat)

	return &App{
		config:    cfg,
		ledger:    ledger,
		scheduler: scheduler,
		sink:      sink,
		times:     times,
		reports:   services.NewReportingService(scheduler, times),
		errors:    NewErrorHandler(),
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// NewAppWithDefaultLedger creates a new CLI application instance with the
// ledger described by cfg
func NewAppWithDefaultLedger(cfg *config.Config) (*App, error) {
	ledger, err := config.CreateLedger(cfg)
	if err != nil {
		return nil, err
	}
	return NewApp(cfg, ledger), nil
}

// WithIO replaces stdin and stdout
func (a *App) WithIO(in io.Reader, out io.Writer) *App {
	a.in = in
	a.out = out
	return a
}

// Close stops pending timers and closes the ledger
func (a *App) Close() error {
	if err := a.scheduler.Close(); err != nil {
		return err
	}
	return a.ledger.Close()
}

func (a *App) newTrackerScreen(ids domain.IDSource) *taskgoal.Screen {
	opts := []taskgoal.Option{taskgoal.WithClock(func() time.Time { return timeNow() })}
	if ids != nil {
		opts = append(opts, taskgoal.WithIDSource(ids))
	}
	return taskgoal.NewScreen(a.scheduler, opts...)
}

func (a *App) newSimpleScreen(ids domain.IDSource) *simpletask.Screen {
	return simpletask.NewScreen(ids)
}

// setupLogging sends debug output to the log file while a full-screen
// program owns the terminal. The returned func closes the file
func (a *App) setupLogging() (func(), error) {
	if !logging.DebugEnabled() {
		return func() {}, nil
	}

	f, err := tea.LogToFile(a.config.Application.LogFile, "pt")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logging.SetOutput(f)

	return func() {
		logging.SetOutput(nil)
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
