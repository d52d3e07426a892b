package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("PT_DEBUG", "")
	assert.False(t, DebugEnabled(), "empty PT_DEBUG disables debug output")

	t.Setenv("PT_DEBUG", "1")
	assert.True(t, DebugEnabled())

	t.Setenv("PT_DEBUG", "true")
	assert.True(t, DebugEnabled())
}

func TestDebugf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	t.Setenv("PT_DEBUG", "")
	Debugf("hidden %s\n", "line")
	assert.Empty(t, buf.String())

	t.Setenv("PT_DEBUG", "1")
	Debugf("scheduled %q in %ds\n", "Buy milk", 600)
	assert.Equal(t, "scheduled \"Buy milk\" in 600s\n", buf.String())
}

func TestDebugln(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	t.Setenv("PT_DEBUG", "")
	Debugln("hidden")
	assert.Empty(t, buf.String())

	t.Setenv("PT_DEBUG", "1")
	Debugln("reminder", "fired")
	assert.Equal(t, "reminder fired\n", buf.String())
}

func TestSetVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	defer SetVerbose(false)

	t.Setenv("PT_DEBUG", "")
	SetVerbose(true)
	assert.True(t, DebugEnabled())

	Debugln("verbose")
	assert.Equal(t, "verbose\n", buf.String())

	SetVerbose(false)
	assert.False(t, DebugEnabled())
}
