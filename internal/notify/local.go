package notify

import (
	"context"
	"sync"
	"time"

	apperrors "productivity-tracker/internal/errors"
	"productivity-tracker/internal/logging"
	"productivity-tracker/internal/repository/sqlite"
)

// Delivery is a reminder whose timer has fired
type Delivery struct {
	ReminderID  int64
	Payload     Payload
	FireAt      time.Time
	DeliveredAt time.Time
}

// Sink receives fired reminders. It is called from timer goroutines
type Sink interface {
	Deliver(d Delivery)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(d Delivery)

// Deliver calls f
func (f SinkFunc) Deliver(d Delivery) {
	f(d)
}

// Timer is the part of *time.Timer the scheduler needs
type Timer interface {
	Stop() bool
}

// AfterFunc arms f to run after d
type AfterFunc func(d time.Duration, f func()) Timer

func defaultAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// LocalScheduler fires one-shot reminders inside the process and keeps its
// bookkeeping in the reminder ledger
type LocalScheduler struct {
	ledger     sqlite.Repository
	permission PermissionStatus
	sink       Sink
	now        func() time.Time
	afterFunc  AfterFunc

	mu     sync.Mutex
	timers map[int64]Timer
	closed bool
}

// Option configures a LocalScheduler
type Option func(*LocalScheduler)

// WithSink sets where fired reminders go
func WithSink(sink Sink) Option {
	return func(s *LocalScheduler) {
		s.sink = sink
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *LocalScheduler) {
		s.now = now
	}
}

// WithAfterFunc replaces time.AfterFunc
func WithAfterFunc(afterFunc AfterFunc) Option {
	return func(s *LocalScheduler) {
		s.afterFunc = afterFunc
	}
}

// NewLocalScheduler creates a scheduler backed by ledger. permission is the
// answer every RequestPermission call gets
func NewLocalScheduler(ledger sqlite.Repository, permission PermissionStatus, opts ...Option) *LocalScheduler {
	s := &LocalScheduler{
		ledger:     ledger,
		permission: permission,
		sink:       SinkFunc(func(Delivery) {}),
		now:        time.Now,
		afterFunc:  defaultAfterFunc,
		timers:     make(map[int64]Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestPermission returns the configured permission answer
func (s *LocalScheduler) RequestPermission(ctx context.Context) (PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return PermissionDenied, err
	}
	logging.Debugf("notification permission: %s\n", s.permission)
	return s.permission, nil
}

// ScheduleOnceAfter records the reminder and arms a timer. Without
// permission the reminder is recorded as suppressed and never fires
func (s *LocalScheduler) ScheduleOnceAfter(ctx context.Context, delay time.Duration, p Payload) error {
	if delay < 0 {
		return apperrors.NewInvalidInputError("delay", delay, "must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return apperrors.NewPermissionError("schedule reminder", "closed scheduler")
	}

	now := s.now()
	reminder := &sqlite.Reminder{
		Title:       p.Title,
		Body:        p.Body,
		Status:      sqlite.StatusScheduled,
		ScheduledAt: now,
		FireAt:      now.Add(delay),
	}
	if s.permission != PermissionGranted {
		reminder.Status = sqlite.StatusSuppressed
	}

	if err := s.ledger.CreateReminder(ctx, reminder); err != nil {
		return err
	}

	if reminder.Status == sqlite.StatusSuppressed {
		logging.Debugf("reminder %d suppressed: %q\n", reminder.ID, p.Body)
		return nil
	}

	id, fireAt := reminder.ID, reminder.FireAt
	s.timers[id] = s.afterFunc(delay, func() {
		s.fire(id, p, fireAt)
	})
	logging.Debugf("reminder %d armed for %s\n", id, delay)
	return nil
}

func (s *LocalScheduler) fire(id int64, p Payload, fireAt time.Time) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	deliveredAt := s.now()
	err := s.ledger.MarkDelivered(context.Background(), id, deliveredAt)
	s.mu.Unlock()

	if apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound) {
		logging.Debugf("reminder %d already delivered\n", id)
		return
	}
	if err != nil {
		logging.Debugf("reminder %d: %v\n", id, err)
		return
	}

	s.sink.Deliver(Delivery{
		ReminderID:  id,
		Payload:     p,
		FireAt:      fireAt,
		DeliveredAt: deliveredAt,
	})
}

// Pending lists reminders that are armed but have not fired
func (s *LocalScheduler) Pending(ctx context.Context) ([]*sqlite.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := sqlite.StatusScheduled
	return s.ledger.SearchReminders(ctx, sqlite.SearchOptions{Status: &status})
}

// History lists every reminder the scheduler has seen
func (s *LocalScheduler) History(ctx context.Context) ([]*sqlite.Reminder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.ListReminders(ctx)
}

// Close stops all armed timers. The ledger stays open
func (s *LocalScheduler) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.closed = true
	return nil
}
