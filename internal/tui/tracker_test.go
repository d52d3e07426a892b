package tui

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/notify"
	"productivity-tracker/internal/repository/sqlite"
	"productivity-tracker/internal/screen/taskgoal"
	"productivity-tracker/internal/services"
	"productivity-tracker/internal/testutil"
)

const testLayout = "2006-01-02 15:04"

var mountTime = time.Date(2026, 10, 18, 9, 0, 0, 0, time.Local)

// runes builds a key message that types s.
func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// keyOf builds a key message for a special key.
func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// send feeds msgs to m in order and returns the final model.
func send(m tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

// newTrackerHarness builds a tracker model over a fake scheduler.
func newTrackerHarness(t *testing.T, scheduler *testutil.FakeScheduler, opts TrackerOptions) (TrackerModel, *taskgoal.Screen) {
	t.Helper()
	screen := taskgoal.NewScreen(scheduler,
		taskgoal.WithIDSource(testutil.SequentialIDs()),
		taskgoal.WithClock(testutil.FixedClock(mountTime)),
	)
	times := services.NewTimeService(testLayout, testLayout)
	return NewTrackerModel(context.Background(), screen, nil, times, opts), screen
}

func TestTrackerModel_AddTask(t *testing.T) {
	scheduler := testutil.NewFakeScheduler()
	model, screen := newTrackerHarness(t, scheduler, TrackerOptions{})

	m := send(model, runes("Buy milk"))
	assert.Equal(t, "Buy milk", screen.State().Draft)

	m = send(m, keyOf(tea.KeyEnter))

	state := screen.State()
	require.Len(t, state.Tasks, 1)
	assert.Equal(t, "Buy milk", state.Tasks[0].Name)
	assert.Empty(t, m.(TrackerModel).input.Value())
	require.Len(t, scheduler.Calls(), 1)
	assert.Equal(t, "Time to: Buy milk", scheduler.Calls()[0].Payload.Body)

	view := m.View()
	assert.Contains(t, view, "Task Added: Buy milk")
	assert.Contains(t, view, "Buy milk - today 09:00")
}

func TestTrackerModel_EmptyEntryAlert(t *testing.T) {
	model, screen := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{})

	m := send(model, keyOf(tea.KeyCtrlG))
	assert.Equal(t, taskgoal.AlertEmptyGoal, screen.State().Alert)
	assert.Contains(t, m.View(), "Please enter a goal!")

	m = send(m, runes("ignored while the alert is up"))
	assert.Empty(t, screen.State().Draft)

	m = send(m, keyOf(tea.KeyEnter))
	assert.False(t, screen.State().HasAlert())
	assert.NotContains(t, m.View(), "Please enter a goal!")
}

func TestTrackerModel_CompleteGoal(t *testing.T) {
	model, screen := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{})

	m := send(model,
		runes("Run 5k"), keyOf(tea.KeyCtrlG),
		runes("Read"), keyOf(tea.KeyCtrlG),
		keyOf(tea.KeyTab),
		keyOf(tea.KeyEnter),
	)

	state := screen.State()
	assert.True(t, state.Goals[0].Completed)
	assert.False(t, state.Goals[1].Completed)
	assert.Equal(t, 1, state.CompletedGoals)
	assert.Contains(t, m.View(), "Completed Goals: 1 / 2")

	m = send(m, keyOf(tea.KeyEnter))
	assert.Equal(t, 1, screen.State().CompletedGoals, "completing again does not double count")

	m = send(m, keyOf(tea.KeyDown), tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	assert.Equal(t, 2, screen.State().CompletedGoals)

	m = send(m, keyOf(tea.KeyTab), runes("x"))
	assert.Equal(t, "x", screen.State().Draft)
	assert.Equal(t, focusInput, m.(TrackerModel).focus)
}

func TestTrackerModel_TabWithoutGoalsStaysOnInput(t *testing.T) {
	model, _ := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{})

	m := send(model, keyOf(tea.KeyTab))
	assert.Equal(t, focusInput, m.(TrackerModel).focus)
}

func TestTrackerModel_PickerNudge(t *testing.T) {
	model, screen := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{})

	m := send(model, keyOf(tea.KeyCtrlT))
	require.True(t, screen.State().PickerOpen)
	assert.Contains(t, m.View(), "Pick Time")

	m = send(m, keyOf(tea.KeyUp), keyOf(tea.KeyUp), keyOf(tea.KeyPgUp), keyOf(tea.KeyDown))
	assert.Equal(t, mountTime.Add(time.Hour+5*time.Minute), m.(TrackerModel).picker.Value())

	m, cmd := m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	msg := cmd()
	require.IsType(t, DateTimePickedMsg{}, msg)

	m = send(m, msg)
	state := screen.State()
	assert.False(t, state.PickerOpen)
	assert.Equal(t, mountTime.Add(time.Hour+5*time.Minute), state.Reminder)
	assert.Contains(t, m.View(), "Reminder: today 10:05")
}

func TestTrackerModel_PastReminder(t *testing.T) {
	scheduler := testutil.NewFakeScheduler()
	model, screen := newTrackerHarness(t, scheduler, TrackerOptions{})

	m := send(model, keyOf(tea.KeyCtrlT), runes("-10m"))
	m, cmd := m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m = send(m, cmd())
	assert.Equal(t, mountTime.Add(-10*time.Minute), screen.State().Reminder)

	m = send(m, runes("Buy milk"), keyOf(tea.KeyEnter))

	state := screen.State()
	assert.Len(t, state.Tasks, 1)
	assert.Equal(t, taskgoal.AlertPastReminder, state.Alert)
	assert.Empty(t, scheduler.Calls())
	assert.Contains(t, m.View(), "Please select a future time!")
}

func TestTrackerModel_PickerInvalidInput(t *testing.T) {
	model, screen := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{})

	m := send(model, keyOf(tea.KeyCtrlT), runes("someday"))
	m, cmd := m.Update(keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.True(t, screen.State().PickerOpen)
	assert.Contains(t, m.View(), "invalid input for time")
}

func TestTrackerModel_PickerCancel(t *testing.T) {
	model, screen := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{})

	m := send(model, keyOf(tea.KeyCtrlT), keyOf(tea.KeyUp))
	m, cmd := m.Update(keyOf(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.Equal(t, PickerCancelledMsg{}, cmd())

	send(m, cmd())
	state := screen.State()
	assert.False(t, state.PickerOpen)
	assert.Equal(t, mountTime, state.Reminder)
}

func TestTrackerModel_InitRequestsPermission(t *testing.T) {
	scheduler := testutil.NewFakeScheduler()
	scheduler.Permission = notify.PermissionDenied
	model, screen := newTrackerHarness(t, scheduler, TrackerOptions{})

	batch, ok := model.Init()().(tea.BatchMsg)
	require.True(t, ok)

	var m tea.Model = model
	for _, cmd := range batch {
		if msg, ok := cmd().(permissionMsg); ok {
			m = send(m, msg)
		}
	}

	assert.Equal(t, 1, scheduler.PermissionRequests())
	assert.Equal(t, taskgoal.AlertPermissionDenied, screen.State().Alert)
	assert.Contains(t, m.View(), "Permission for notifications was denied!")
}

func TestTrackerModel_ReminderBanner(t *testing.T) {
	var bell bytes.Buffer
	model, _ := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{Bell: true, BellWriter: &bell})

	m, cmd := model.Update(ReminderMsg{Delivery: notify.Delivery{Payload: notify.NewPayload("Buy milk")}})
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, "\a", bell.String())
	assert.Contains(t, m.View(), "Task Reminder! Time to: Buy milk")
}

func TestTrackerModel_MaxLength(t *testing.T) {
	model, screen := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{MaxLength: 4})

	send(model, runes("abcdefgh"))
	assert.Equal(t, "abcd", screen.State().Draft)
}

type idleTimer struct{}

func (idleTimer) Stop() bool { return true }

func TestTrackerModel_PendingReminders(t *testing.T) {
	ledger, err := sqlite.New(":memory:", sqlite.Options{})
	require.NoError(t, err)
	defer ledger.Close()

	scheduler := notify.NewLocalScheduler(ledger, notify.PermissionGranted,
		notify.WithClock(testutil.FixedClock(mountTime)),
		notify.WithAfterFunc(func(time.Duration, func()) notify.Timer { return idleTimer{} }),
	)
	screen := taskgoal.NewScreen(scheduler, taskgoal.WithClock(testutil.FixedClock(mountTime)))
	times := services.NewTimeService(testLayout, testLayout)
	reports := services.NewReportingService(scheduler, times)
	model := NewTrackerModel(context.Background(), screen, reports, times, TrackerOptions{})

	m := send(model, keyOf(tea.KeyCtrlT), keyOf(tea.KeyUp))
	m, cmd := m.Update(keyOf(tea.KeyEnter))
	m = send(m, cmd(), runes("Buy milk"), keyOf(tea.KeyEnter))

	assert.Equal(t, 1, m.(TrackerModel).pending)
	assert.Contains(t, m.View(), "Pending reminders: 1")
}

func TestTrackerModel_Quit(t *testing.T) {
	model, _ := newTrackerHarness(t, testutil.NewFakeScheduler(), TrackerOptions{})

	_, cmd := model.Update(keyOf(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
