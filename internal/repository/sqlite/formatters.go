package sqlite

import (
	"database/sql"
	"time"
)

// dbTimeLayout is RFC3339 in UTC with a fixed-width fraction, so ordering
// the text column orders by time
const dbTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTimeForDB formats a time.Time value for storage
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(dbTimeLayout)
}

// FormatTimePtrForDB formats a *time.Time value, returning nil if the pointer is nil
func FormatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB parses an RFC3339 formatted time string from the database
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.Parse(dbTimeLayout, s)
}

// ParseNullTimeFromDB parses a nullable time column
func ParseNullTimeFromDB(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := ParseTimeFromDB(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
