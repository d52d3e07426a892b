package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"productivity-tracker/internal/errors"
)

const clockLayout = "15:04"

var shorthandPattern = regexp.MustCompile(`^([+-]?)(\d+)(m|h|d|w)$`)

// timeServiceImpl implements the TimeService interface
type timeServiceImpl struct {
	inputFormat   string
	displayFormat string
}

// NewTimeService creates a new TimeService instance
func NewTimeService(inputFormat, displayFormat string) TimeService {
	return &timeServiceImpl{
		inputFormat:   inputFormat,
		displayFormat: displayFormat,
	}
}

// ParseReminderTime accepts "now", a shorthand offset from now ("+10m",
// "-2h", "1d"), a clock time today ("15:04") or an absolute time in the
// configured input format. Times are read in now's location
func (t *timeServiceImpl) ParseReminderTime(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, errors.NewValidationError("reminder time cannot be empty", nil)
	}

	if strings.EqualFold(input, "now") {
		return now, nil
	}

	if offset, ok, err := parseShorthand(input); ok {
		if err != nil {
			return time.Time{}, err
		}
		return now.Add(offset), nil
	}

	if parsed, err := time.ParseInLocation(t.inputFormat, input, now.Location()); err == nil {
		return parsed, nil
	}

	if clock, err := time.ParseInLocation(clockLayout, input, now.Location()); err == nil {
		return time.Date(now.Year(), now.Month(), now.Day(), clock.Hour(), clock.Minute(), 0, 0, now.Location()), nil
	}

	return time.Time{}, errors.NewInvalidInputError("time", input,
		fmt.Sprintf("use %q, %s, or an offset like +10m", t.inputFormat, clockLayout))
}

// parseShorthand converts "+30m", "-2h", "1d", "1w" to a signed duration.
// ok is false when input is not shorthand at all
func parseShorthand(input string) (offset time.Duration, ok bool, err error) {
	matches := shorthandPattern.FindStringSubmatch(input)
	if matches == nil {
		return 0, false, nil
	}

	value, err := strconv.Atoi(matches[2])
	if err != nil {
		return 0, true, errors.NewInvalidInputError("time", input, "offset is too large")
	}

	var unit time.Duration
	switch matches[3] {
	case "m":
		unit = time.Minute
	case "h":
		unit = time.Hour
	case "d":
		unit = 24 * time.Hour
	case "w":
		unit = 7 * 24 * time.Hour
	}

	if int64(value) > math.MaxInt64/int64(unit) {
		return 0, true, errors.NewInvalidInputError("time", input, "offset is too large")
	}
	offset = time.Duration(value) * unit
	if matches[1] == "-" {
		offset = -offset
	}
	return offset, true, nil
}

// FormatReminderTime shows only the clock for times on now's day
func (t *timeServiceImpl) FormatReminderTime(at, now time.Time) string {
	if t.IsSameDay(at, now) {
		return "today " + at.Format(clockLayout)
	}
	return at.Format(t.displayFormat)
}

// FormatDuration formats a duration into human-readable string
func (t *timeServiceImpl) FormatDuration(duration time.Duration) string {
	if duration < 0 {
		duration = -duration
	}

	days := int(duration.Hours()) / 24
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// DescribeDelay returns "in 10m" or "10m ago"
func (t *timeServiceImpl) DescribeDelay(at, now time.Time) string {
	delay := at.Sub(now)
	if delay < 0 {
		return t.FormatDuration(delay) + " ago"
	}
	return "in " + t.FormatDuration(delay)
}

// IsSameDay checks whether a and b fall on the same calendar day in a's location
func (t *timeServiceImpl) IsSameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	year1, month1, day1 := a.Date()
	year2, month2, day2 := b.Date()
	return year1 == year2 && month1 == month2 && day1 == day2
}
