package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "productivity-tracker/internal/errors"
	"productivity-tracker/internal/services"
)

// DateTimePickedMsg is sent when the picker closes with a value
type DateTimePickedMsg struct {
	Value time.Time
}

// PickerCancelledMsg is sent when the picker closes without a value
type PickerCancelledMsg struct{}

const nudgeStep = 5 * time.Minute

// Picker is a modal date-time picker. Typed input wins over the nudged
// value when both are present
type Picker struct {
	value time.Time
	input textinput.Model
	times services.TimeService
	now   func() time.Time
	err   string
	keys  PickerKeyMap
	help  help.Model
}

// NewPicker creates a closed picker
func NewPicker(times services.TimeService, now func() time.Time) Picker {
	input := textinput.New()
	input.Placeholder = "+10m, 17:30 or 2006-01-02 15:04"
	input.CharLimit = 32

	return Picker{
		input: input,
		times: times,
		now:   now,
		keys:  DefaultPickerKeyMap(),
		help:  help.New(),
	}
}

// Open resets the picker to value and focuses the input
func (p Picker) Open(value time.Time) (Picker, tea.Cmd) {
	p.value = value
	p.err = ""
	p.input.SetValue("")
	return p, p.input.Focus()
}

// Value returns the currently nudged value
func (p Picker) Value() time.Time {
	return p.value
}

// Update handles a key while the picker is open
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	switch {
	case key.Matches(keyMsg, p.keys.Cancel):
		p.input.Blur()
		return p, func() tea.Msg { return PickerCancelledMsg{} }

	case key.Matches(keyMsg, p.keys.Select):
		if text := strings.TrimSpace(p.input.Value()); text != "" {
			parsed, err := p.times.ParseReminderTime(text, p.now())
			if err != nil {
				p.err = apperrors.GetUserMessage(err)
				return p, nil
			}
			p.value = parsed
		}
		p.input.Blur()
		value := p.value
		return p, func() tea.Msg { return DateTimePickedMsg{Value: value} }

	case key.Matches(keyMsg, p.keys.Later):
		p.value = p.value.Add(nudgeStep)
		return p, nil
	case key.Matches(keyMsg, p.keys.Earlier):
		p.value = p.value.Add(-nudgeStep)
		return p, nil
	case key.Matches(keyMsg, p.keys.NextHour):
		p.value = p.value.Add(time.Hour)
		return p, nil
	case key.Matches(keyMsg, p.keys.PrevHour):
		p.value = p.value.Add(-time.Hour)
		return p, nil
	}

	p.err = ""
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View renders the picker dialog
func (p Picker) View() string {
	now := p.now()
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pick Time"))
	b.WriteString("\n\n")
	b.WriteString(p.times.FormatReminderTime(p.value, now))
	b.WriteString(mutedStyle.Render(" (" + p.times.DescribeDelay(p.value, now) + ")"))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())
	if p.err != "" {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render(p.err))
	}
	b.WriteString("\n\n")
	b.WriteString(p.help.View(p.keys))
	return pickerStyle.Render(b.String())
}
