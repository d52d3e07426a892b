package cli

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/config"
	"productivity-tracker/internal/logging"
	"productivity-tracker/internal/testutil"
	"productivity-tracker/internal/tui"
)

type recordingProgram struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (p *recordingProgram) Send(msg tea.Msg) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.msgs = append(p.msgs, msg)
}

func (p *recordingProgram) received() []tea.Msg {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]tea.Msg(nil), p.msgs...)
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewAppWithDefaultLedger(config.NewConfig())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestApp_DueReminderReachesProgram(t *testing.T) {
	stubTimeNow(t, replayNow)
	app := newTestApp(t)

	program := &recordingProgram{}
	app.sink.Attach(program)

	ctx := context.Background()
	screen := app.newTrackerScreen(testutil.SequentialIDs())
	screen.Mount(ctx)
	screen.SetText(ctx, "Stretch")
	screen.SubmitTask(ctx)

	require.Eventually(t, func() bool { return len(program.received()) == 1 }, 2*time.Second, 10*time.Millisecond)

	msg, ok := program.received()[0].(tui.ReminderMsg)
	require.True(t, ok)
	assert.Equal(t, "Time to: Stretch", msg.Delivery.Payload.Body)

	pending, err := app.scheduler.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestApp_SetupLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "pt-debug.log")
	cfg := config.NewConfig()
	cfg.Application.LogFile = logFile

	ledger, err := config.CreateLedger(cfg)
	require.NoError(t, err)
	app := NewApp(cfg, ledger)
	t.Cleanup(func() { app.Close() })

	t.Setenv("PT_DEBUG", "")
	closeLog, err := app.setupLogging()
	require.NoError(t, err)
	closeLog()
	assert.NoFileExists(t, logFile, "no log file without debug output")

	t.Setenv("PT_DEBUG", "1")
	closeLog, err = app.setupLogging()
	require.NoError(t, err)
	logging.Debugln("reminder armed")
	closeLog()

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "reminder armed")
}

func TestApp_CloseClosesLedger(t *testing.T) {
	cfg := config.NewConfig()
	ledger, err := config.CreateLedger(cfg)
	require.NoError(t, err)

	app := NewApp(cfg, ledger)
	require.NoError(t, app.Close())

	_, err = ledger.ListReminders(context.Background())
	assert.Error(t, err)
}
