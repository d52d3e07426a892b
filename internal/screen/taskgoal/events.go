package taskgoal

import (
	"time"

	"productivity-tracker/internal/domain"
	"productivity-tracker/internal/notify"
)

// Event is an input to Reduce
type Event interface {
	event()
}

// TextChanged replaces the draft
type TextChanged struct{ Text string }

// SubmitTask turns the draft into a task with the pending reminder time
type SubmitTask struct{ ID domain.ID }

// SubmitGoal turns the draft into an active goal
type SubmitGoal struct{ ID domain.ID }

// CompleteGoal marks a goal completed
type CompleteGoal struct{ ID domain.ID }

// OpenPicker shows the date-time picker
type OpenPicker struct{}

// DateTimeSelected is the picker's answer
type DateTimeSelected struct{ Value time.Time }

// PickerCancelled dismisses the picker without a value
type PickerCancelled struct{}

// ReminderRejected reports that a task's reminder time had already passed
type ReminderRejected struct{ TaskID domain.ID }

// PermissionResolved carries the answer to the mount-time permission request
type PermissionResolved struct{ Status notify.PermissionStatus }

// DismissAlert closes the alert dialog
type DismissAlert struct{}

func (TextChanged) event()        {}
func (SubmitTask) event()         {}
func (SubmitGoal) event()         {}
func (CompleteGoal) event()       {}
func (OpenPicker) event()         {}
func (DateTimeSelected) event()   {}
func (PickerCancelled) event()    {}
func (ReminderRejected) event()   {}
func (PermissionResolved) event() {}
func (DismissAlert) event()       {}

// Effect is work Reduce asks the controller to do
type Effect interface {
	effect()
}

// ScheduleReminder asks for a reminder for a newly added task
type ScheduleReminder struct {
	TaskID domain.ID
	Name   string
	At     time.Time
}

func (ScheduleReminder) effect() {}
