package model

import (
	"math"
	"sort"
)

// Derived values are recomputed from a task snapshot on each read. The inputs
// are small in-memory slices, so there is no caching layer to invalidate.

func CompletedCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// ProgressPercent is round(100 * completed / total), or 0 for an empty
// snapshot so the ratio is never computed over zero tasks.
func ProgressPercent(tasks []Task) int {
	total := len(tasks)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(CompletedCount(tasks)) / float64(total)))
}

// Upcoming returns the first limit incomplete tasks ordered by day key
// ascending. The sort is stable, so tasks on the same day keep insertion
// order. Day keys sort chronologically as plain strings.
func Upcoming(tasks []Task, limit int) []Task {
	if limit <= 0 {
		return nil
	}
	pending := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].Day < pending[j].Day })
	if len(pending) > limit {
		pending = pending[:limit]
	}
	return pending
}
