package notify

import (
	"context"
	"fmt"
	"time"

	apperrors "productivity-tracker/internal/errors"
)

// PermissionStatus is the answer to a notification permission request
type PermissionStatus string

const (
	PermissionGranted PermissionStatus = "granted"
	PermissionDenied  PermissionStatus = "denied"
)

// ReminderTitle is the fixed title of every task reminder
const ReminderTitle = "Task Reminder!"

// ErrPastReminder matches any scheduling error for a reminder time that has
// already elapsed
var ErrPastReminder = &apperrors.AppError{
	Type:    apperrors.ErrorTypeScheduling,
	Message: "reminder time has already passed",
	Code:    "REMINDER_IN_PAST",
}

// Payload is the content of a local notification
type Payload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewPayload builds the reminder payload for a task
func NewPayload(name string) Payload {
	return Payload{
		Title: ReminderTitle,
		Body:  fmt.Sprintf("Time to: %s", name),
	}
}

// Scheduler is the device notification capability the screens consume
type Scheduler interface {
	RequestPermission(ctx context.Context) (PermissionStatus, error)
	ScheduleOnceAfter(ctx context.Context, delay time.Duration, p Payload) error
}

// Request is a planned call to Scheduler.ScheduleOnceAfter
type Request struct {
	Delay   time.Duration
	Payload Payload
}

// Plan computes the reminder request for a task named name firing at at.
// The delay is taken at millisecond precision. A reminder whose time has
// passed yields an error matching ErrPastReminder
func Plan(name string, at, now time.Time) (Request, error) {
	delay := time.Duration(at.UnixMilli()-now.UnixMilli()) * time.Millisecond
	if delay < 0 {
		return Request{}, apperrors.NewSchedulingError(name, delay)
	}

	return Request{
		Delay:   delay,
		Payload: NewPayload(name),
	}, nil
}

// Submit hands a planned request to the scheduler
func (r Request) Submit(ctx context.Context, s Scheduler) error {
	return s.ScheduleOnceAfter(ctx, r.Delay, r.Payload)
}
