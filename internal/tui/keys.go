package tui

import "github.com/charmbracelet/bubbles/key"

// TrackerKeyMap holds the task/goal screen bindings
type TrackerKeyMap struct {
	AddTask    key.Binding
	AddGoal    key.Binding
	PickTime   key.Binding
	SwitchPane key.Binding
	Up         key.Binding
	Down       key.Binding
	MarkDone   key.Binding
	Dismiss    key.Binding
	Quit       key.Binding
}

// DefaultTrackerKeyMap returns the standard bindings
func DefaultTrackerKeyMap() TrackerKeyMap {
	return TrackerKeyMap{
		AddTask:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		AddGoal:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "add goal")),
		PickTime:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "pick time")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "goals/input")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		MarkDone:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "mark done")),
		Dismiss:    key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k TrackerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddTask, k.AddGoal, k.PickTime, k.SwitchPane, k.Quit}
}

// FullHelp implements help.KeyMap
func (k TrackerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddTask, k.AddGoal, k.PickTime},
		{k.SwitchPane, k.Up, k.Down, k.MarkDone},
		{k.Quit},
	}
}

// SimpleKeyMap holds the simple task screen bindings
type SimpleKeyMap struct {
	Add        key.Binding
	SwitchPane key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	Quit       key.Binding
}

// DefaultSimpleKeyMap returns the standard bindings
func DefaultSimpleKeyMap() SimpleKeyMap {
	return SimpleKeyMap{
		Add:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "list/input")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("space", "toggle")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k SimpleKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.SwitchPane, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap
func (k SimpleKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Add, k.SwitchPane}, {k.Up, k.Down, k.Toggle}, {k.Quit}}
}

// PickerKeyMap holds the date-time picker bindings
type PickerKeyMap struct {
	Select   key.Binding
	Cancel   key.Binding
	Later    key.Binding
	Earlier  key.Binding
	NextHour key.Binding
	PrevHour key.Binding
}

// DefaultPickerKeyMap returns the standard bindings
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Later:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "+5m")),
		Earlier:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "-5m")),
		NextHour: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "+1h")),
		PrevHour: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "-1h")),
	}
}

// ShortHelp implements help.KeyMap
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Cancel, k.Later, k.Earlier, k.NextHour, k.PrevHour}
}

// FullHelp implements help.KeyMap
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
