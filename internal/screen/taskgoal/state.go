// Package taskgoal implements the task and goal screen: a shared text
// draft that becomes either a task with a reminder or a goal, plus a
// completed-goal counter.
package taskgoal

import (
	"time"

	"productivity-tracker/internal/domain"
)

// Alerts and confirmations shown by the screen
const (
	AlertEmptyTask        = "Please enter a task!"
	AlertEmptyGoal        = "Please enter a goal!"
	AlertPastReminder     = "Please select a future time!"
	AlertPermissionDenied = "Permission for notifications was denied!"
	MessageGoalCompleted  = "Goal Completed! ✅"
)

// State is everything the screen shows. It is only changed by Reduce
type State struct {
	Tasks          []domain.Task
	Goals          []domain.Goal
	Draft          string
	Reminder       time.Time
	PickerOpen     bool
	CompletedGoals int
	LastMessage    string
	Alert          string
}

// NewState returns the state at mount, with the reminder preset to now
func NewState(now time.Time) State {
	return State{Reminder: now}
}

// HasAlert reports whether a blocking alert is showing
func (s State) HasAlert() bool {
	return s.Alert != ""
}

// GoalAt returns the goal at 1-based position n
func (s State) GoalAt(n int) (domain.Goal, bool) {
	if n < 1 || n > len(s.Goals) {
		return domain.Goal{}, false
	}
	return s.Goals[n-1], true
}
