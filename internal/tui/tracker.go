package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"productivity-tracker/internal/logging"
	"productivity-tracker/internal/screen/taskgoal"
	"productivity-tracker/internal/services"
)

type focusArea int

const (
	focusInput focusArea = iota
	focusList
)

// permissionMsg carries the mount-time permission answer back into Update
type permissionMsg struct {
	event taskgoal.Event
}

// TrackerOptions tunes the task/goal program
type TrackerOptions struct {
	MaxLength  int
	Bell       bool
	BellWriter io.Writer
}

// TrackerModel renders a taskgoal.Screen
type TrackerModel struct {
	ctx     context.Context
	screen  *taskgoal.Screen
	reports services.ReportingService
	times   services.TimeService
	opts    TrackerOptions

	input   textinput.Model
	picker  Picker
	focus   focusArea
	cursor  int
	banner  string
	pending int

	keys  TrackerKeyMap
	help  help.Model
	width int
}

// NewTrackerModel creates the task/goal program model
func NewTrackerModel(ctx context.Context, screen *taskgoal.Screen, reports services.ReportingService, times services.TimeService, opts TrackerOptions) TrackerModel {
	input := textinput.New()
	input.Placeholder = "Enter task or goal"
	input.CharLimit = opts.MaxLength
	input.Focus()

	return TrackerModel{
		ctx:     ctx,
		screen:  screen,
		reports: reports,
		times:   times,
		opts:    opts,
		input:   input,
		picker:  NewPicker(times, screen.Now),
		keys:    DefaultTrackerKeyMap(),
		help:    help.New(),
	}
}

// Init requests notification permission off the UI loop
func (m TrackerModel) Init() tea.Cmd {
	ctx, screen := m.ctx, m.screen
	return tea.Batch(textinput.Blink, func() tea.Msg {
		return permissionMsg{event: screen.RequestPermission(ctx)}
	})
}

// Update implements tea.Model
func (m TrackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case permissionMsg:
		m.screen.Dispatch(m.ctx, msg.event)
		return m, nil

	case ReminderMsg:
		m.banner = fmt.Sprintf("🔔 %s %s", msg.Delivery.Payload.Title, msg.Delivery.Payload.Body)
		m.refreshPending()
		if m.opts.Bell {
			return m, m.ringBell()
		}
		return m, nil

	case DateTimePickedMsg:
		m.screen.SelectDateTime(m.ctx, msg.Value)
		return m, m.input.Focus()

	case PickerCancelledMsg:
		m.screen.CancelPicker(m.ctx)
		return m, m.input.Focus()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	if m.screen.State().PickerOpen {
		m.picker, cmd = m.picker.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m TrackerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	state := m.screen.State()
	if state.HasAlert() {
		if key.Matches(msg, m.keys.Dismiss) {
			m.screen.DismissAlert(m.ctx)
		}
		return m, nil
	}

	if state.PickerOpen {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.focus == focusList {
		return m.handleGoalKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.AddTask):
		m.screen.SubmitTask(m.ctx)
		m.input.SetValue(m.screen.State().Draft)
		m.refreshPending()
		return m, nil

	case key.Matches(msg, m.keys.AddGoal):
		m.screen.SubmitGoal(m.ctx)
		m.input.SetValue(m.screen.State().Draft)
		return m, nil

	case key.Matches(msg, m.keys.PickTime):
		m.screen.OpenPicker(m.ctx)
		m.input.Blur()
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Open(state.Reminder)
		return m, cmd

	case key.Matches(msg, m.keys.SwitchPane):
		if len(state.Goals) > 0 {
			m.focus = focusList
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != state.Draft {
		m.screen.SetText(m.ctx, m.input.Value())
	}
	return m, cmd
}

func (m TrackerModel) handleGoalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	goals := m.screen.State().Goals

	switch {
	case key.Matches(msg, m.keys.SwitchPane):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(goals)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.MarkDone):
		if m.cursor < len(goals) {
			m.screen.CompleteGoal(m.ctx, goals[m.cursor].ID)
		}
	}
	return m, nil
}

func (m *TrackerModel) refreshPending() {
	if m.reports == nil {
		return
	}
	rows, err := m.reports.ReminderReport(m.ctx, m.screen.Now(), true)
	if err != nil {
		logging.Debugf("pending reminders: %v\n", err)
		return
	}
	m.pending = len(rows)
}

func (m TrackerModel) ringBell() tea.Cmd {
	w := m.opts.BellWriter
	return func() tea.Msg {
		if w != nil {
			fmt.Fprint(w, "\a")
		}
		return nil
	}
}

// View implements tea.Model
func (m TrackerModel) View() string {
	state := m.screen.State()
	now := m.screen.Now()

	if state.HasAlert() {
		dialog := state.Alert + "\n\n" + mutedStyle.Render("enter: OK")
		return appStyle.Render(titleStyle.Render("Productivity Tracker") + "\n\n" + dialogStyle.Render(dialog))
	}
	if state.PickerOpen {
		return appStyle.Render(titleStyle.Render("Productivity Tracker") + "\n\n" + m.picker.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Productivity Tracker"))
	b.WriteString("\n")
	if m.banner != "" {
		b.WriteString("\n" + bannerStyle.Render(m.banner) + "\n")
	}
	if state.LastMessage != "" {
		b.WriteString("\n" + messageStyle.Render(state.LastMessage) + "\n")
	}

	b.WriteString("\nReminder: " + m.times.FormatReminderTime(state.Reminder, now) + "\n")
	b.WriteString(m.input.View() + "\n")

	b.WriteString(subtitleStyle.Render("Tasks") + "\n")
	if len(state.Tasks) == 0 {
		b.WriteString(mutedStyle.Render("  No tasks yet.") + "\n")
	}
	for _, task := range state.Tasks {
		b.WriteString(fmt.Sprintf("  %s - %s\n", task.Name, m.times.FormatReminderTime(task.Time, now)))
	}

	b.WriteString(subtitleStyle.Render("Goals") + "\n")
	if len(state.Goals) == 0 {
		b.WriteString(mutedStyle.Render("  No goals yet.") + "\n")
	}
	for i, goal := range state.Goals {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		if goal.Completed {
			b.WriteString(marker + doneStyle.Render("[x] "+goal.Name) + "\n")
		} else {
			b.WriteString(marker + "[ ] " + goal.Name + "\n")
		}
	}

	b.WriteString(fmt.Sprintf("\nCompleted Goals: %d / %d\n", state.CompletedGoals, len(state.Goals)))
	if m.pending > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Pending reminders: %d", m.pending)) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))

	return appStyle.Render(b.String())
}
