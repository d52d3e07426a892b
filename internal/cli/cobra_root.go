package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"productivity-tracker/internal/config"
	"productivity-tracker/internal/logging"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config
	app    *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader) *RootCommand {
	root := &RootCommand{loader: loader}

	root.cmd = &cobra.Command{
		Use:   "pt",
		Short: "A terminal productivity tracker with task reminders and goals",
		Long: `Productivity Tracker (pt) keeps a list of tasks with reminder times and a
list of goals you can tick off. Reminders fire as local notifications while
the program runs.

EXAMPLES:
  pt                                       # Open the task and goal screen
  pt simple                                # Open the plain checklist screen
  pt replay day.pt                         # Replay an event script headlessly
  echo "task Buy milk" | pt replay -       # Replay from stdin
  pt replay --screen simple --format json script.pt

SCRIPT LINES:
  text <t>       set the input field        time <when>   pick a reminder time
  task [name]    add a task                 goal [name]   add a goal
  complete <n>   complete goal n            dismiss       close the alert
  add [text]     add a checklist item       toggle <n>    toggle item n
  Lines starting with # are comments. Times accept +10m, -2h, 1d, 2w,
  15:04, now, or the configured input format.

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > .env > defaults

  Ledger Configuration:
    PT_LEDGER_DSN                          Reminder ledger SQLite DSN (default: :memory:)
    PT_LEDGER_QUERY_TIMEOUT                Query timeout (default: 5s)
    PT_LEDGER_WRITE_TIMEOUT                Write timeout (default: 5s)

  Notification Configuration:
    PT_NOTIFY_PERMISSION                   granted or denied (default: granted)
    PT_NOTIFY_BELL                         Ring the terminal bell on reminders (default: true)

  Time Configuration:
    PT_TIME_DISPLAY_FORMAT                 Time format (default: 2006-01-02 15:04)
    PT_TIME_INPUT_FORMAT                   Accepted input layout (default: 2006-01-02 15:04)

  Input Configuration:
    PT_INPUT_MAX_LENGTH                    Max entry length in characters (default: 255)

  Application Configuration:
    PT_APP_TIMEOUT                         Replay timeout (default: 30s)
    PT_APP_VERBOSE                         Enable debug output (default: false)
    PT_LOG_FILE                            Debug log file for the full-screen UI (default: pt-debug.log)
    PT_DEBUG                               Enable debug output when set

  Command Configuration:
    PT_REPLAY_DEFAULT_FORMAT               table, json or csv (default: table)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewTrackerCommand(root.app).Execute(cmd.Context(), args)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases the App afterwards
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a parent context for every command
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	defer r.close()
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs sets the arguments, for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// SetIn sets the reader replay scripts are read from when no file is given
func (r *RootCommand) SetIn(in io.Reader) {
	r.cmd.SetIn(in)
}

// SetOut sets the writer reports are printed to
func (r *RootCommand) SetOut(out io.Writer) {
	r.cmd.SetOut(out)
}

// Config returns the configuration loaded for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

func (r *RootCommand) close() {
	if r.app == nil {
		return
	}
	if err := r.app.Close(); err != nil {
		logging.Debugf("close app: %v\n", err)
	}
	r.app = nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Ledger configuration
	flags.String("ledger-dsn", "", "Reminder ledger DSN (overrides PT_LEDGER_DSN)")
	flags.Duration("ledger-query-timeout", 0, "Ledger query timeout (overrides PT_LEDGER_QUERY_TIMEOUT)")
	flags.Duration("ledger-write-timeout", 0, "Ledger write timeout (overrides PT_LEDGER_WRITE_TIMEOUT)")

	// Notification configuration
	flags.String("notify-permission", "", "granted or denied (overrides PT_NOTIFY_PERMISSION)")
	flags.Bool("bell", false, "Ring the terminal bell on reminders (overrides PT_NOTIFY_BELL)")

	// Time configuration
	flags.String("time-format", "", "Time display format (overrides PT_TIME_DISPLAY_FORMAT)")
	flags.String("time-input-format", "", "Time input layout (overrides PT_TIME_INPUT_FORMAT)")

	// Input configuration
	flags.Int("max-length", 0, "Maximum entry length (overrides PT_INPUT_MAX_LENGTH)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Replay timeout (overrides PT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable debug output (overrides PT_APP_VERBOSE)")
	flags.String("log-file", "", "Debug log file (overrides PT_LOG_FILE)")

	// Commands configuration
	flags.String("replay-format", "", "Default replay format (overrides PT_REPLAY_DEFAULT_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	trackerCmd := &cobra.Command{
		Use:   "tracker",
		Short: "Open the task and goal screen",
		Long: `Open the task and goal screen. Tasks get a reminder at the picked time;
goals can be marked completed once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewTrackerCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	simpleCmd := &cobra.Command{
		Use:   "simple",
		Short: "Open the plain checklist screen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewSimpleCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	var replay ReplayOptions
	replayCmd := &cobra.Command{
		Use:   "replay [file]",
		Short: "Replay an event script without a terminal UI",
		Long: `Replay an event script against a screen and print its final state along
with the reminders still pending. The script is read from stdin when no file
is given or the file is "-".

Examples:
  pt replay day.pt
  pt replay --screen simple checklist.pt
  pt replay --format json - < day.pt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.getAppTimeout())
			defer cancel()

			return NewReplayCommand(r.app, replay).Execute(ctx, args)
		},
	}
	replayCmd.Flags().StringVar(&replay.Screen, "screen", ScreenTracker, "Screen to drive: tracker or simple")
	replayCmd.Flags().StringVar(&replay.Format, "format", "", "Output format: table, json or csv (default from PT_REPLAY_DEFAULT_FORMAT)")

	r.cmd.AddCommand(
		trackerCmd,
		simpleCmd,
		replayCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// setup loads configuration with flag overrides and builds the App
func (r *RootCommand) setup(cmd *cobra.Command) error {
	cfg, err := r.loader.LoadWithOverrides(overridesFromFlags(cmd))
	if err != nil {
		return err
	}
	r.config = cfg
	logging.SetVerbose(cfg.Application.Verbose)

	app, err := NewAppWithDefaultLedger(cfg)
	if err != nil {
		return err
	}
	r.app = app.WithIO(cmd.InOrStdin(), cmd.OutOrStdout())
	return nil
}

// overridesFromFlags turns explicitly set flags into config overrides
func overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	return &config.ConfigOverrides{
		LedgerDSN:           changedString(cmd, "ledger-dsn"),
		LedgerQueryTimeout:  changedDuration(cmd, "ledger-query-timeout"),
		LedgerWriteTimeout:  changedDuration(cmd, "ledger-write-timeout"),
		NotifyPermission:    changedString(cmd, "notify-permission"),
		NotifyBell:          changedBool(cmd, "bell"),
		TimeDisplayFormat:   changedString(cmd, "time-format"),
		TimeInputFormat:     changedString(cmd, "time-input-format"),
		InputMaxLength:      changedInt(cmd, "max-length"),
		Timeout:             changedDuration(cmd, "app-timeout"),
		Verbose:             changedBool(cmd, "verbose"),
		LogFile:             changedString(cmd, "log-file"),
		ReplayDefaultFormat: changedString(cmd, "replay-format"),
	}
}

func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedDuration(cmd *cobra.Command, name string) *time.Duration {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetDuration(name)
	return &v
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}
