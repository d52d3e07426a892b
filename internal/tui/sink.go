package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"productivity-tracker/internal/logging"
	"productivity-tracker/internal/notify"
)

// ReminderMsg carries a fired reminder into the UI loop
type ReminderMsg struct {
	Delivery notify.Delivery
}

// messageSender is the part of *tea.Program the sink uses
type messageSender interface {
	Send(msg tea.Msg)
}

// ProgramSink forwards deliveries to a running program. The scheduler is
// built before the program exists, so the program is attached later
type ProgramSink struct {
	mu      sync.Mutex
	program messageSender
}

// NewProgramSink creates an unattached sink
func NewProgramSink() *ProgramSink {
	return &ProgramSink{}
}

// Attach sets the program that receives deliveries
func (s *ProgramSink) Attach(p messageSender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.program = p
}

// Deliver implements notify.Sink. Deliveries before Attach are dropped
func (s *ProgramSink) Deliver(d notify.Delivery) {
	s.mu.Lock()
	p := s.program
	s.mu.Unlock()

	if p == nil {
		logging.Debugf("reminder %d fired before the UI started\n", d.ReminderID)
		return
	}
	p.Send(ReminderMsg{Delivery: d})
}
