package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindGoal(t *testing.T) {
	goals := []Goal{{ID: "g1", Name: "Run 5k"}, {ID: "g2", Name: "Read"}}

	tests := []struct {
		name string
		id   ID
		want int
	}{
		{"first", "g1", 0},
		{"second", "g2", 1},
		{"missing", "g3", -1},
		{"empty id", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindGoal(goals, tt.id))
		})
	}
	assert.Equal(t, -1, FindGoal(nil, "g1"))
}

func TestFindItem(t *testing.T) {
	items := []Item{{ID: "i1", Text: "Buy milk"}}

	assert.Equal(t, 0, FindItem(items, "i1"))
	assert.Equal(t, -1, FindItem(items, "i2"))
}

func TestCountCompleted(t *testing.T) {
	assert.Equal(t, 0, CountCompleted([]Goal(nil)))
	assert.Equal(t, 2, CountCompleted([]Goal{
		{ID: "a", Completed: true},
		{ID: "b"},
		{ID: "c", Completed: true},
	}))
	assert.Equal(t, 1, CountCompleted([]Item{
		{ID: "i1", Text: "Buy milk"},
		{ID: "i2", Text: "Call mum", Completed: true},
	}))
}
