package taskgoal

import (
	"context"
	"time"

	"productivity-tracker/internal/domain"
	"productivity-tracker/internal/logging"
	"productivity-tracker/internal/notify"
)

// Screen owns a State and runs the effects Reduce emits
type Screen struct {
	state     State
	ids       domain.IDSource
	now       func() time.Time
	scheduler notify.Scheduler
}

// Option configures a Screen
type Option func(*Screen)

// WithIDSource replaces the UUIDv7 ID source
func WithIDSource(ids domain.IDSource) Option {
	return func(s *Screen) {
		s.ids = ids
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Screen) {
		s.now = now
	}
}

// NewScreen creates a mounted-but-not-yet-permitted screen
func NewScreen(scheduler notify.Scheduler, opts ...Option) *Screen {
	s := &Screen{
		ids:       domain.NewUUIDSource(),
		now:       time.Now,
		scheduler: scheduler,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state = NewState(s.now())
	return s
}

// State returns the current state
func (s *Screen) State() State {
	return s.state
}

// Now returns the screen's clock reading
func (s *Screen) Now() time.Time {
	return s.now()
}

// Mount requests notification permission and applies the answer
func (s *Screen) Mount(ctx context.Context) State {
	return s.Dispatch(ctx, s.RequestPermission(ctx))
}

// RequestPermission asks the scheduler once and returns the answer as an
// event. It does not touch state, so it can run off the UI loop. A failed
// request counts as denied
func (s *Screen) RequestPermission(ctx context.Context) Event {
	status, err := s.scheduler.RequestPermission(ctx)
	if err != nil {
		logging.Debugf("permission request failed: %v\n", err)
		status = notify.PermissionDenied
	}
	return PermissionResolved{Status: status}
}

// Dispatch applies e and runs any resulting effects
func (s *Screen) Dispatch(ctx context.Context, e Event) State {
	var effects []Effect
	s.state, effects = Reduce(s.state, e)

	for _, effect := range effects {
		switch effect := effect.(type) {
		case ScheduleReminder:
			s.scheduleReminder(ctx, effect)
		}
	}
	return s.state
}

func (s *Screen) scheduleReminder(ctx context.Context, effect ScheduleReminder) {
	req, err := notify.Plan(effect.Name, effect.At, s.now())
	if err != nil {
		logging.Debugf("reminder for task %s rejected: %v\n", effect.TaskID, err)
		s.Dispatch(ctx, ReminderRejected{TaskID: effect.TaskID})
		return
	}

	// fire-and-forget: a failed schedule never changes screen state
	if err := req.Submit(ctx, s.scheduler); err != nil {
		logging.Debugf("schedule reminder for task %s: %v\n", effect.TaskID, err)
	}
}

// SetText replaces the draft
func (s *Screen) SetText(ctx context.Context, text string) State {
	return s.Dispatch(ctx, TextChanged{Text: text})
}

// SubmitTask adds the draft as a task and schedules its reminder
func (s *Screen) SubmitTask(ctx context.Context) State {
	return s.Dispatch(ctx, SubmitTask{ID: s.ids.NextID()})
}

// SubmitGoal adds the draft as a goal
func (s *Screen) SubmitGoal(ctx context.Context) State {
	return s.Dispatch(ctx, SubmitGoal{ID: s.ids.NextID()})
}

// CompleteGoal marks the goal with id completed
func (s *Screen) CompleteGoal(ctx context.Context, id domain.ID) State {
	return s.Dispatch(ctx, CompleteGoal{ID: id})
}

// OpenPicker shows the date-time picker
func (s *Screen) OpenPicker(ctx context.Context) State {
	return s.Dispatch(ctx, OpenPicker{})
}

// SelectDateTime answers the picker with value
func (s *Screen) SelectDateTime(ctx context.Context, value time.Time) State {
	return s.Dispatch(ctx, DateTimeSelected{Value: value})
}

// CancelPicker dismisses the picker
func (s *Screen) CancelPicker(ctx context.Context) State {
	return s.Dispatch(ctx, PickerCancelled{})
}

// DismissAlert closes the alert
func (s *Screen) DismissAlert(ctx context.Context) State {
	return s.Dispatch(ctx, DismissAlert{})
}
