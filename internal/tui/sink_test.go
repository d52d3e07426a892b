package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productivity-tracker/internal/notify"
)

type recordingSender struct {
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.msgs = append(r.msgs, msg)
}

func TestProgramSink(t *testing.T) {
	sink := NewProgramSink()
	delivery := notify.Delivery{ReminderID: 7, Payload: notify.NewPayload("Buy milk")}

	sink.Deliver(delivery)

	sender := &recordingSender{}
	sink.Attach(sender)
	sink.Deliver(delivery)

	require.Len(t, sender.msgs, 1, "deliveries before Attach are dropped")
	assert.Equal(t, ReminderMsg{Delivery: delivery}, sender.msgs[0])
}
