package services

import (
	"context"
	"time"

	"productivity-tracker/internal/domain"
	"productivity-tracker/internal/screen/simpletask"
	"productivity-tracker/internal/screen/taskgoal"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	reminders   ReminderSource
	timeService TimeService
}

// NewReportingService creates a new ReportingService instance. reminders
// may be nil when no scheduler is attached
func NewReportingService(reminders ReminderSource, timeService TimeService) ReportingService {
	return &reportingServiceImpl{
		reminders:   reminders,
		timeService: timeService,
	}
}

// SummarizeTracker numbers tasks and goals from 1 in display order
func (r *reportingServiceImpl) SummarizeTracker(state taskgoal.State, now time.Time) *TrackerSummary {
	summary := &TrackerSummary{
		Tasks:          make([]TaskRow, 0, len(state.Tasks)),
		Goals:          make([]GoalRow, 0, len(state.Goals)),
		CompletedGoals: state.CompletedGoals,
		TotalGoals:     len(state.Goals),
		Reminder:       r.timeService.FormatReminderTime(state.Reminder, now),
		LastMessage:    state.LastMessage,
		Alert:          state.Alert,
	}

	for i, task := range state.Tasks {
		summary.Tasks = append(summary.Tasks, TaskRow{
			Position: i + 1,
			ID:       task.ID.String(),
			Name:     task.Name,
			Time:     r.timeService.FormatReminderTime(task.Time, now),
		})
	}
	for i, goal := range state.Goals {
		summary.Goals = append(summary.Goals, GoalRow{
			Position:  i + 1,
			ID:        goal.ID.String(),
			Name:      goal.Name,
			Completed: goal.Completed,
		})
	}

	return summary
}

// SummarizeSimple numbers items from 1 in display order
func (r *reportingServiceImpl) SummarizeSimple(state simpletask.State) *SimpleSummary {
	summary := &SimpleSummary{
		Items: make([]ItemRow, 0, len(state.Items)),
		Total: len(state.Items),
	}

	for i, item := range state.Items {
		summary.Items = append(summary.Items, ItemRow{
			Position:  i + 1,
			ID:        item.ID.String(),
			Text:      item.Text,
			Completed: item.Completed,
		})
	}
	summary.Completed = domain.CountCompleted(state.Items)

	return summary
}

// ReminderReport lists ledger reminders ordered by fire time
func (r *reportingServiceImpl) ReminderReport(ctx context.Context, now time.Time, pendingOnly bool) ([]*ReminderRow, error) {
	if r.reminders == nil {
		return []*ReminderRow{}, nil
	}

	list := r.reminders.History
	if pendingOnly {
		list = r.reminders.Pending
	}
	reminders, err := list(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*ReminderRow, 0, len(reminders))
	for _, reminder := range reminders {
		fireAt := reminder.FireAt.In(now.Location())
		rows = append(rows, &ReminderRow{
			ID:     reminder.ID,
			Title:  reminder.Title,
			Body:   reminder.Body,
			Status: reminder.Status,
			FireAt: r.timeService.FormatReminderTime(fireAt, now),
			Due:    r.timeService.DescribeDelay(fireAt, now),
		})
	}

	return rows, nil
}
