package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	apperrors "productivity-tracker/internal/errors"
	"productivity-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions filters ledger queries. Nil fields are ignored
type SearchOptions struct {
	Status     *string
	FireBefore *time.Time
	FireAfter  *time.Time
}

// Repository defines the reminder ledger operations
type Repository interface {
	CreateReminder(ctx context.Context, reminder *Reminder) error
	GetReminder(ctx context.Context, id int64) (*Reminder, error)
	ListReminders(ctx context.Context) ([]*Reminder, error)
	SearchReminders(ctx context.Context, opts SearchOptions) ([]*Reminder, error)
	MarkDelivered(ctx context.Context, id int64, at time.Time) error

	Close() error
}

// Options tunes per-statement timeouts. Zero values disable the timeout
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
}

// New opens the ledger at dsn and runs migrations. ":memory:" gives a
// ledger that disappears with the process. A file ledger keeps its history,
// but reminders still scheduled from an earlier run are marked suppressed
func New(dsn string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, apperrors.NewDatabaseError("open database", err)
	}

	// every pooled connection to ":memory:" would be a separate database
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, apperrors.NewDatabaseError("run migrations", err)
	}

	if err := suppressOrphans(context.Background(), db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db, opts: opts}, nil
}

// suppressOrphans retires reminders an earlier process left scheduled. Their
// timers died with that process, so they can never fire
func suppressOrphans(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx,
		"UPDATE reminders SET status = ? WHERE status = ?",
		StatusSuppressed, StatusScheduled)
	if err != nil {
		return ledgerError("suppress orphaned reminders", err)
	}
	return nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.QueryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opts.QueryTimeout)
}

func (r *SQLiteRepository) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opts.WriteTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.opts.WriteTimeout)
}

// CreateReminder inserts a reminder and sets its ID
func (r *SQLiteRepository) CreateReminder(ctx context.Context, reminder *Reminder) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	if reminder.Status == "" {
		reminder.Status = StatusScheduled
	}

	query := `
	INSERT INTO reminders (title, body, status, scheduled_at, fire_at, delivered_at)
	VALUES (?, ?, ?, ?, ?, ?)`

	id, err := insertRow(ctx, r.db, query,
		reminder.Title,
		reminder.Body,
		reminder.Status,
		FormatTimeForDB(reminder.ScheduledAt),
		FormatTimeForDB(reminder.FireAt),
		FormatTimePtrForDB(reminder.DeliveredAt),
	)
	if err != nil {
		return err
	}

	reminder.ID = id
	return nil
}

// GetReminder retrieves a reminder by ID
func (r *SQLiteRepository) GetReminder(ctx context.Context, id int64) (*Reminder, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := `
	SELECT id, title, body, status, scheduled_at, fire_at, delivered_at
	FROM reminders
	WHERE id = ?`

	return queryOne(ctx, r.db, query, ScanReminder, "reminder", id)
}

// ListReminders retrieves all reminders ordered by fire time
func (r *SQLiteRepository) ListReminders(ctx context.Context) ([]*Reminder, error) {
	return r.SearchReminders(ctx, SearchOptions{})
}

// SearchReminders retrieves reminders matching opts ordered by fire time
func (r *SQLiteRepository) SearchReminders(ctx context.Context, opts SearchOptions) ([]*Reminder, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	var conditions []string
	var args []interface{}

	if opts.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *opts.Status)
	}
	if opts.FireAfter != nil {
		conditions = append(conditions, "fire_at >= ?")
		args = append(args, FormatTimeForDB(*opts.FireAfter))
	}
	if opts.FireBefore != nil {
		conditions = append(conditions, "fire_at <= ?")
		args = append(args, FormatTimeForDB(*opts.FireBefore))
	}

	query := `
	SELECT id, title, body, status, scheduled_at, fire_at, delivered_at
	FROM reminders`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY fire_at ASC, id ASC"

	return queryAll(ctx, r.db, query, ScanReminders, args...)
}

// MarkDelivered records that a scheduled reminder fired at the given time
func (r *SQLiteRepository) MarkDelivered(ctx context.Context, id int64, at time.Time) error {
	ctx, cancel := r.writeContext(ctx)
	defer cancel()

	query := `
	UPDATE reminders
	SET status = ?, delivered_at = ?
	WHERE id = ? AND status = ?`

	return updateRow(ctx, r.db, query, "scheduled reminder", id,
		StatusDelivered, FormatTimeForDB(at), id, StatusScheduled)
}
