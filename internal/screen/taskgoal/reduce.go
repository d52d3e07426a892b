package taskgoal

import (
	"fmt"
	"slices"

	"productivity-tracker/internal/domain"
	"productivity-tracker/internal/notify"
	"productivity-tracker/internal/validation"
)

var entries = validation.NewEntryValidator()

// Reduce applies e to s. It never mutates s; slices are copied before
// they change
func Reduce(s State, e Event) (State, []Effect) {
	switch e := e.(type) {
	case TextChanged:
		s.Draft = e.Text

	case SubmitTask:
		if err := entries.ValidateTaskGoalEntry(validation.EntryTask, s.Draft); err != nil {
			s.Alert = AlertEmptyTask
			return s, nil
		}
		task := domain.Task{ID: e.ID, Name: s.Draft, Time: s.Reminder}
		s.Tasks = append(slices.Clip(s.Tasks), task)
		s.LastMessage = fmt.Sprintf("Task Added: %s", task.Name)
		s.Draft = ""
		return s, []Effect{ScheduleReminder{TaskID: task.ID, Name: task.Name, At: task.Time}}

	case SubmitGoal:
		if err := entries.ValidateTaskGoalEntry(validation.EntryGoal, s.Draft); err != nil {
			s.Alert = AlertEmptyGoal
			return s, nil
		}
		goal := domain.Goal{ID: e.ID, Name: s.Draft}
		s.Goals = append(slices.Clip(s.Goals), goal)
		s.LastMessage = fmt.Sprintf("Goal Added: %s", goal.Name)
		s.Draft = ""

	case CompleteGoal:
		i := domain.FindGoal(s.Goals, e.ID)
		if i < 0 || s.Goals[i].Completed {
			return s, nil
		}
		s.Goals = slices.Clone(s.Goals)
		s.Goals[i].Completed = true
		s.CompletedGoals++
		s.LastMessage = MessageGoalCompleted

	case OpenPicker:
		s.PickerOpen = true

	case DateTimeSelected:
		if !s.PickerOpen {
			return s, nil
		}
		s.Reminder = e.Value
		s.PickerOpen = false

	case PickerCancelled:
		s.PickerOpen = false

	case ReminderRejected:
		s.Alert = AlertPastReminder

	case PermissionResolved:
		if e.Status == notify.PermissionDenied {
			s.Alert = AlertPermissionDenied
		}

	case DismissAlert:
		s.Alert = ""
	}

	return s, nil
}
