package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"productivity-tracker/internal/errors"
)

// Script verbs understood by the replay command
const (
	VerbText     = "text"
	VerbTask     = "task"
	VerbGoal     = "goal"
	VerbTime     = "time"
	VerbComplete = "complete"
	VerbDismiss  = "dismiss"
	VerbAdd      = "add"
	VerbToggle   = "toggle"
)

// Step is one parsed script line
type Step struct {
	Line int
	Verb string
	Arg  string
}

// Position returns the 1-based list position carried by complete and toggle
func (s Step) Position() int {
	n, _ := strconv.Atoi(strings.TrimSpace(s.Arg))
	return n
}

// ParseScript reads one step per line. Blank lines and lines starting with
// # are skipped. The argument is everything after the first space, kept
// verbatim so task names may contain spaces
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		raw = strings.TrimLeft(raw, " \t")
		verb, arg, hasArg := strings.Cut(raw, " ")
		step := Step{Line: line, Verb: verb, Arg: arg}
		if err := checkStep(step, hasArg); err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	return steps, nil
}

func checkStep(step Step, hasArg bool) error {
	switch step.Verb {
	case VerbText, VerbTask, VerbGoal, VerbAdd:
		return nil
	case VerbTime:
		if strings.TrimSpace(step.Arg) == "" {
			return stepError(step, "time needs a value such as +10m")
		}
	case VerbComplete, VerbToggle:
		if _, err := strconv.Atoi(strings.TrimSpace(step.Arg)); err != nil {
			return stepError(step, fmt.Sprintf("%s needs a list position", step.Verb))
		}
	case VerbDismiss:
		if hasArg && strings.TrimSpace(step.Arg) != "" {
			return stepError(step, "dismiss takes no argument")
		}
	default:
		return stepError(step, fmt.Sprintf("unknown command %q", step.Verb))
	}
	return nil
}

func stepError(step Step, reason string) error {
	return errors.NewInvalidInputError("script", step.Verb, fmt.Sprintf("line %d: %s", step.Line, reason)).
		WithContext("line", step.Line)
}
