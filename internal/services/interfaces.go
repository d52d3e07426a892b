package services

import (
	"context"
	"time"

	"productivity-tracker/internal/repository/sqlite"
	"productivity-tracker/internal/screen/simpletask"
	"productivity-tracker/internal/screen/taskgoal"
)

// TrackerSummary is a printable view of the task/goal screen
type TrackerSummary struct {
	Tasks          []TaskRow `json:"tasks"`
	Goals          []GoalRow `json:"goals"`
	CompletedGoals int       `json:"completed_goals"`
	TotalGoals     int       `json:"total_goals"`
	Reminder       string    `json:"reminder"`
	LastMessage    string    `json:"last_message,omitempty"`
	Alert          string    `json:"alert,omitempty"`
}

// TaskRow is one task with its formatted reminder time
type TaskRow struct {
	Position int    `json:"position"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Time     string `json:"time"`
}

// GoalRow is one goal
type GoalRow struct {
	Position  int    `json:"position"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// SimpleSummary is a printable view of the simple task screen
type SimpleSummary struct {
	Items     []ItemRow `json:"items"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

// ItemRow is one simple-screen item
type ItemRow struct {
	Position  int    `json:"position"`
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ReminderRow is one ledger entry
type ReminderRow struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Status string `json:"status"`
	FireAt string `json:"fire_at"`
	Due    string `json:"due"`
}

// ReminderSource lists reminders known to a scheduler
type ReminderSource interface {
	Pending(ctx context.Context) ([]*sqlite.Reminder, error)
	History(ctx context.Context) ([]*sqlite.Reminder, error)
}

// TimeService handles reminder time input and display
type TimeService interface {
	// Time parsing
	ParseReminderTime(input string, now time.Time) (time.Time, error)

	// Display
	FormatReminderTime(t, now time.Time) string
	FormatDuration(duration time.Duration) string
	DescribeDelay(at, now time.Time) string

	IsSameDay(a, b time.Time) bool
}

// ReportingService turns screen state and ledger rows into printable views
type ReportingService interface {
	SummarizeTracker(state taskgoal.State, now time.Time) *TrackerSummary
	SummarizeSimple(state simpletask.State) *SimpleSummary
	ReminderReport(ctx context.Context, now time.Time, pendingOnly bool) ([]*ReminderRow, error)
}
