package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanReminder scans a single reminder from a database row
func ScanReminder(scanner Scanner) (*Reminder, error) {
	reminder := &Reminder{}
	var scheduledAt, fireAt string
	var deliveredAt sql.NullString

	err := scanner.Scan(
		&reminder.ID,
		&reminder.Title,
		&reminder.Body,
		&reminder.Status,
		&scheduledAt,
		&fireAt,
		&deliveredAt,
	)
	if err != nil {
		return nil, err
	}

	if reminder.ScheduledAt, err = ParseTimeFromDB(scheduledAt); err != nil {
		return nil, err
	}
	if reminder.FireAt, err = ParseTimeFromDB(fireAt); err != nil {
		return nil, err
	}
	if reminder.DeliveredAt, err = ParseNullTimeFromDB(deliveredAt); err != nil {
		return nil, err
	}

	return reminder, nil
}

// ScanReminders scans multiple reminders from database rows
func ScanReminders(rows Rows) ([]*Reminder, error) {
	var reminders []*Reminder
	for rows.Next() {
		reminder, err := ScanReminder(rows)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reminders, nil
}
