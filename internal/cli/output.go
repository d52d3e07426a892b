package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"productivity-tracker/internal/errors"
	"productivity-tracker/internal/services"
)

// Report formats accepted by --format
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Report is the final state of a replayed screen
type Report struct {
	Screen    string                   `json:"screen"`
	Tracker   *services.TrackerSummary `json:"tracker,omitempty"`
	Simple    *services.SimpleSummary  `json:"simple,omitempty"`
	Reminders []*services.ReminderRow  `json:"pending_reminders"`
}

// WriteReport writes r to w in format
func WriteReport(w io.Writer, format string, r *Report) error {
	switch format {
	case FormatTable:
		return writeTable(w, r)
	case FormatJSON:
		return writeJSON(w, r)
	case FormatCSV:
		return writeCSV(w, r)
	default:
		return errors.NewInvalidInputError("format", format, "supported formats are table, json and csv")
	}
}

func writeJSON(w io.Writer, r *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if t := r.Tracker; t != nil {
		fmt.Fprintln(tw, "TASKS")
		fmt.Fprintln(tw, "#\tNAME\tTIME")
		for _, task := range t.Tasks {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", task.Position, task.Name, task.Time)
		}
		fmt.Fprintln(tw)

		fmt.Fprintln(tw, "GOALS")
		fmt.Fprintln(tw, "#\tGOAL\tDONE")
		for _, goal := range t.Goals {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", goal.Position, goal.Name, checkbox(goal.Completed))
		}
		fmt.Fprintln(tw)

		fmt.Fprintf(tw, "Completed Goals: %d / %d\n", t.CompletedGoals, t.TotalGoals)
		fmt.Fprintf(tw, "Reminder time: %s\n", t.Reminder)
		if t.LastMessage != "" {
			fmt.Fprintf(tw, "Last message: %s\n", t.LastMessage)
		}
		if t.Alert != "" {
			fmt.Fprintf(tw, "Alert: %s\n", t.Alert)
		}
	}

	if s := r.Simple; s != nil {
		fmt.Fprintln(tw, "ITEMS")
		fmt.Fprintln(tw, "#\tTASK\tDONE")
		for _, item := range s.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", item.Position, item.Text, checkbox(item.Completed))
		}
		fmt.Fprintln(tw)
		fmt.Fprintf(tw, "Completed: %d / %d\n", s.Completed, s.Total)
	}

	if len(r.Reminders) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "PENDING REMINDERS")
		fmt.Fprintln(tw, "ID\tTITLE\tBODY\tFIRE AT\tDUE")
		for _, reminder := range r.Reminders {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", reminder.ID, reminder.Title, reminder.Body, reminder.FireAt, reminder.Due)
		}
	}

	return tw.Flush()
}

// writeCSV flattens the report into one row per entry
func writeCSV(w io.Writer, r *Report) error {
	writer := csv.NewWriter(w)

	header := []string{"Kind", "Position", "ID", "Name", "Time", "Status"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	var rows [][]string
	if t := r.Tracker; t != nil {
		for _, task := range t.Tasks {
			rows = append(rows, []string{"task", strconv.Itoa(task.Position), task.ID, task.Name, task.Time, ""})
		}
		for _, goal := range t.Goals {
			rows = append(rows, []string{"goal", strconv.Itoa(goal.Position), goal.ID, goal.Name, "", doneStatus(goal.Completed)})
		}
	}
	if s := r.Simple; s != nil {
		for _, item := range s.Items {
			rows = append(rows, []string{"item", strconv.Itoa(item.Position), item.ID, item.Text, "", doneStatus(item.Completed)})
		}
	}
	for _, reminder := range r.Reminders {
		rows = append(rows, []string{"reminder", "", strconv.FormatInt(reminder.ID, 10), reminder.Body, reminder.FireAt, reminder.Status})
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func doneStatus(done bool) string {
	if done {
		return "done"
	}
	return "open"
}
