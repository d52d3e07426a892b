package simpletask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/domain"
	"productivity-tracker/internal/testutil"
)

func TestReduce_AddTask(t *testing.T) {
	tests := []struct {
		name      string
		draft     string
		wantItems []domain.Item
		wantDraft string
	}{
		{"plain text", "Buy milk", []domain.Item{{ID: "i1", Text: "Buy milk"}}, ""},
		{"padded text stored as typed", "  Buy milk ", []domain.Item{{ID: "i1", Text: "  Buy milk "}}, ""},
		{"empty rejected", "", nil, ""},
		{"whitespace rejected silently", " \t ", nil, " \t "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Reduce(State{}, TextChanged{Text: tt.draft})
			s = Reduce(s, AddTask{ID: "i1"})

			assert.Equal(t, tt.wantItems, s.Items)
			assert.Equal(t, tt.wantDraft, s.Draft)
		})
	}
}

func TestReduce_ToggleTwiceRestores(t *testing.T) {
	s := Reduce(State{}, TextChanged{Text: "Buy milk"})
	s = Reduce(s, AddTask{ID: "i1"})
	original := s

	once := Reduce(s, ToggleCompletion{ID: "i1"})
	assert.True(t, once.Items[0].Completed)
	assert.False(t, original.Items[0].Completed, "input state is not mutated")

	twice := Reduce(once, ToggleCompletion{ID: "i1"})
	assert.Equal(t, original, twice)
}

func TestReduce_ToggleUnknownID(t *testing.T) {
	s := Reduce(State{}, TextChanged{Text: "Buy milk"})
	s = Reduce(s, AddTask{ID: "i1"})

	after := Reduce(s, ToggleCompletion{ID: "missing"})
	assert.Equal(t, s, after)
}

func TestScreen(t *testing.T) {
	screen := NewScreen(testutil.SequentialIDs())

	screen.SetText("first")
	screen.AddTask()
	screen.SetText("   ")
	screen.AddTask()
	screen.SetText("second")
	s := screen.AddTask()

	require.Len(t, s.Items, 2)
	assert.Equal(t, domain.ID("id-001"), s.Items[0].ID)
	assert.Equal(t, domain.ID("id-003"), s.Items[1].ID)

	s = screen.ToggleCompletion(s.Items[1].ID)
	assert.True(t, s.Items[1].Completed)
	assert.False(t, s.Items[0].Completed)

	item, ok := s.ItemAt(2)
	require.True(t, ok)
	assert.Equal(t, "second", item.Text)
	_, ok = s.ItemAt(3)
	assert.False(t, ok)
}

func TestNewScreen_DefaultIDs(t *testing.T) {
	screen := NewScreen(nil)
	screen.SetText("x")
	s := screen.AddTask()
	require.Len(t, s.Items, 1)
	assert.NotEmpty(t, s.Items[0].ID)
}
