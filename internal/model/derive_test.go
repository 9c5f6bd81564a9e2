package model

import (
	"testing"
	"time"
)

func sampleTask(id int64, day string, completed bool) Task {
	return Task{
		ID:        id,
		Title:     "task",
		Completed: completed,
		Day:       day,
		Priority:  PriorityMedium,
		CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestProgressPercentEmptySnapshot(t *testing.T) {
	if got := ProgressPercent(nil); got != 0 {
		t.Fatalf("expected 0%% for empty snapshot, got %d", got)
	}
}

func TestProgressPercentRounds(t *testing.T) {
	tasks := []Task{
		sampleTask(1, "2026-02-09", true),
		sampleTask(2, "2026-02-09", false),
		sampleTask(3, "2026-02-10", false),
	}
	// 1 of 3 done: 33.33 rounds to 33.
	if got := ProgressPercent(tasks); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	tasks[1].Completed = true
	// 2 of 3 done: 66.67 rounds to 67.
	if got := ProgressPercent(tasks); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
	if got := CompletedCount(tasks); got != 2 {
		t.Fatalf("expected 2 completed, got %d", got)
	}
}

func TestUpcomingFiltersSortsAndLimits(t *testing.T) {
	tasks := []Task{
		sampleTask(1, "2026-02-12", false),
		sampleTask(2, "2026-02-10", true),
		sampleTask(3, "2026-02-10", false),
		sampleTask(4, "2026-02-11", false),
		sampleTask(5, "2026-02-10", false),
	}
	got := Upcoming(tasks, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0].ID != 3 || got[1].ID != 5 {
		t.Fatalf("expected ids [3 5] (same day keeps insertion order), got [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestUpcomingZeroLimit(t *testing.T) {
	tasks := []Task{sampleTask(1, "2026-02-10", false)}
	if got := Upcoming(tasks, 0); got != nil {
		t.Fatalf("expected nil for zero limit, got %v", got)
	}
}

func TestDayKeyEqualityGroupsTasks(t *testing.T) {
	morning := time.Date(2026, 2, 9, 0, 1, 0, 0, time.UTC)
	evening := time.Date(2026, 2, 9, 23, 59, 0, 0, time.UTC)
	if DayKey(morning) != DayKey(evening) {
		t.Fatalf("instants on the same day must share a key: %q vs %q", DayKey(morning), DayKey(evening))
	}
	next := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	if DayKey(morning) == DayKey(next) {
		t.Fatal("different days must not share a key")
	}
}
