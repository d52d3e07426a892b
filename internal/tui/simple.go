package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"productivity-tracker/internal/screen/simpletask"
)

// SimpleModel renders a simpletask.Screen
type SimpleModel struct {
	screen *simpletask.Screen

	input  textinput.Model
	focus  focusArea
	cursor int

	keys SimpleKeyMap
	help help.Model
}

// NewSimpleModel creates the simple task program model
func NewSimpleModel(screen *simpletask.Screen, maxLength int) SimpleModel {
	input := textinput.New()
	input.Placeholder = "Enter a task"
	input.CharLimit = maxLength
	input.Focus()

	return SimpleModel{
		screen: screen,
		input:  input,
		keys:   DefaultSimpleKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model
func (m SimpleModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m SimpleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.focus == focusList {
			return m.handleListKey(msg)
		}
		return m.handleInputKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m SimpleModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.screen.AddTask()
		m.input.SetValue(m.screen.State().Draft)
		return m, nil
	case key.Matches(msg, m.keys.SwitchPane):
		if len(m.screen.State().Items) > 0 {
			m.focus = focusList
			m.input.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != m.screen.State().Draft {
		m.screen.SetText(m.input.Value())
	}
	return m, cmd
}

func (m SimpleModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.screen.State().Items

	switch {
	case key.Matches(msg, m.keys.SwitchPane):
		m.focus = focusInput
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(items) {
			m.screen.ToggleCompletion(items[m.cursor].ID)
		}
	}
	return m, nil
}

// View implements tea.Model
func (m SimpleModel) View() string {
	state := m.screen.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Productivity Tracker 📊") + "\n\n")
	b.WriteString(m.input.View() + "\n")

	if len(state.Items) == 0 {
		b.WriteString("\n" + mutedStyle.Render("No tasks yet.") + "\n")
	} else {
		b.WriteString("\n")
	}
	for i, item := range state.Items {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = cursorStyle.Render("> ")
		}
		if item.Completed {
			b.WriteString(marker + doneStyle.Render("[x] "+item.Text) + "\n")
		} else {
			b.WriteString(fmt.Sprintf("%s[ ] %s\n", marker, item.Text))
		}
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return appStyle.Render(b.String())
}
