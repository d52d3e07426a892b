// Package simpletask implements the flat task list screen. Items toggle
// freely between incomplete and completed.
package simpletask

import (
	"slices"

	"productivity-tracker/internal/domain"
	"productivity-tracker/internal/validation"
)

// State is the screen's list and draft
type State struct {
	Items []domain.Item
	Draft string
}

// ItemAt returns the item at 1-based position n
func (s State) ItemAt(n int) (domain.Item, bool) {
	if n < 1 || n > len(s.Items) {
		return domain.Item{}, false
	}
	return s.Items[n-1], true
}

// Event is an input to Reduce
type Event interface {
	event()
}

// TextChanged replaces the draft
type TextChanged struct{ Text string }

// AddTask appends the draft as an incomplete item
type AddTask struct{ ID domain.ID }

// ToggleCompletion flips an item's completed flag
type ToggleCompletion struct{ ID domain.ID }

func (TextChanged) event()      {}
func (AddTask) event()          {}
func (ToggleCompletion) event() {}

var entries = validation.NewEntryValidator()

// Reduce applies e to s without mutating s. Whitespace-only drafts and
// unknown IDs leave the state unchanged
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case TextChanged:
		s.Draft = e.Text

	case AddTask:
		if entries.ValidateSimpleEntry(s.Draft) != nil {
			return s
		}
		s.Items = append(slices.Clip(s.Items), domain.Item{ID: e.ID, Text: s.Draft})
		s.Draft = ""

	case ToggleCompletion:
		i := domain.FindItem(s.Items, e.ID)
		if i < 0 {
			return s
		}
		s.Items = slices.Clone(s.Items)
		s.Items[i].Completed = !s.Items[i].Completed
	}

	return s
}

// Screen owns a State and issues IDs for new items
type Screen struct {
	state State
	ids   domain.IDSource
}

// NewScreen creates an empty screen. A nil ids uses UUIDv7
func NewScreen(ids domain.IDSource) *Screen {
	if ids == nil {
		ids = domain.NewUUIDSource()
	}
	return &Screen{ids: ids}
}

// State returns the current state
func (s *Screen) State() State {
	return s.state
}

// Dispatch applies e
func (s *Screen) Dispatch(e Event) State {
	s.state = Reduce(s.state, e)
	return s.state
}

// SetText replaces the draft
func (s *Screen) SetText(text string) State {
	return s.Dispatch(TextChanged{Text: text})
}

// AddTask adds the draft as a new item
func (s *Screen) AddTask() State {
	return s.Dispatch(AddTask{ID: s.ids.NextID()})
}

// ToggleCompletion flips the item with id
func (s *Screen) ToggleCompletion(id domain.ID) State {
	return s.Dispatch(ToggleCompletion{ID: id})
}
