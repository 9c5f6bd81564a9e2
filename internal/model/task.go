package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidPriority = errors.New("model: invalid task priority")

// DayLayout is the grouping key format for tasks. Two tasks belong to the
// same calendar day iff their day keys are equal as strings.
const DayLayout = "2006-01-02"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Task is one user-created to-do item, keyed by calendar day. IDs are
// assigned by the store and stay unique and increasing for the process
// lifetime. Time is optional free text (HH:MM hint); the empty string means
// no time, which is unambiguous because inputs are trimmed on entry.
type Task struct {
	ID        int64
	Title     string
	Completed bool
	Time      string
	Day       string
	Priority  Priority
	CreatedAt time.Time
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if _, err := time.Parse(DayLayout, t.Day); err != nil {
		return fmt.Errorf("model: task day must be %s, got %q", DayLayout, t.Day)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}

// DayKey truncates an instant to its calendar day grouping key.
func DayKey(at time.Time) string {
	return at.Format(DayLayout)
}
