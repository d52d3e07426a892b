package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/errors"
)

func TestParseScript(t *testing.T) {
	script := strings.Join([]string{
		"# morning",
		"",
		"time +10m",
		"task Buy milk and  eggs",
		"   goal Run 5k",
		"complete 1\r",
		"text",
		"dismiss",
		"toggle  2",
	}, "\n")

	steps, err := ParseScript(strings.NewReader(script))
	require.NoError(t, err)

	assert.Equal(t, []Step{
		{Line: 3, Verb: VerbTime, Arg: "+10m"},
		{Line: 4, Verb: VerbTask, Arg: "Buy milk and  eggs"},
		{Line: 5, Verb: VerbGoal, Arg: "Run 5k"},
		{Line: 6, Verb: VerbComplete, Arg: "1"},
		{Line: 7, Verb: VerbText, Arg: ""},
		{Line: 8, Verb: VerbDismiss, Arg: ""},
		{Line: 9, Verb: VerbToggle, Arg: " 2"},
	}, steps)
	assert.Equal(t, 2, steps[6].Position())
}

func TestParseScript_Empty(t *testing.T) {
	steps, err := ParseScript(strings.NewReader("\n# nothing to do\n"))
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		message string
	}{
		{"unknown verb", "task a\nsnooze 5", "line 2: unknown command \"snooze\""},
		{"time without value", "time", "line 1: time needs a value"},
		{"time with blank value", "time   ", "line 1: time needs a value"},
		{"complete without position", "complete", "line 1: complete needs a list position"},
		{"toggle with text", "toggle first", "line 1: toggle needs a list position"},
		{"dismiss with argument", "dismiss now", "line 1: dismiss takes no argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, err := ParseScript(strings.NewReader(tt.script))
			require.Error(t, err)
			assert.Nil(t, steps)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
