package storage

import (
	"context"
	"errors"
	"testing"

	"prokra/internal/model"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := OpenMemory()
	if err != nil {
		t.Fatalf("open memory repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func mustCreate(t *testing.T, repo *SQLiteRepository, title, day string) model.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), model.Task{Title: title, Day: day})
	if err != nil {
		t.Fatalf("create %q: %v", title, err)
	}
	return task
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	repo := setupRepo(t)
	first := mustCreate(t, repo, "первая", "2026-02-09")
	second := mustCreate(t, repo, "вторая", "2026-02-09")
	if first.ID <= 0 || second.ID <= first.ID {
		t.Fatalf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
	if first.Completed || second.Completed {
		t.Fatal("new tasks must start incomplete")
	}
	if first.Priority != model.PriorityMedium {
		t.Fatalf("expected default priority medium, got %q", first.Priority)
	}
}

func TestCreateRejectsInvalidTask(t *testing.T) {
	repo := setupRepo(t)
	if _, err := repo.CreateTask(context.Background(), model.Task{Title: "  ", Day: "2026-02-09"}); err == nil {
		t.Fatal("expected error for blank title")
	}
	if _, err := repo.CreateTask(context.Background(), model.Task{Title: "x", Day: "bad-day"}); err == nil {
		t.Fatal("expected error for malformed day")
	}
}

func TestToggleFlipsAndRestores(t *testing.T) {
	repo := setupRepo(t)
	task := mustCreate(t, repo, "переключаемая", "2026-02-09")

	toggled, err := repo.ToggleTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !toggled.Completed {
		t.Fatal("expected task completed after first toggle")
	}

	restored, err := repo.ToggleTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("toggle back: %v", err)
	}
	if restored.Completed {
		t.Fatal("expected task incomplete after second toggle")
	}
}

func TestToggleMissingTask(t *testing.T) {
	repo := setupRepo(t)
	if _, err := repo.ToggleTask(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesTask(t *testing.T) {
	repo := setupRepo(t)
	task := mustCreate(t, repo, "на удаление", "2026-02-09")

	if err := repo.DeleteTask(context.Background(), task.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetTask(context.Background(), task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.DeleteTask(context.Background(), task.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestListTasksInsertionOrderAndFilters(t *testing.T) {
	repo := setupRepo(t)
	a := mustCreate(t, repo, "a", "2026-02-09")
	b := mustCreate(t, repo, "b", "2026-02-10")
	c := mustCreate(t, repo, "c", "2026-02-09")
	if _, err := repo.ToggleTask(context.Background(), a.ID); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	all, err := repo.ListTasks(context.Background(), ListFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 || all[0].ID != a.ID || all[1].ID != b.ID || all[2].ID != c.ID {
		t.Fatalf("expected insertion order [a b c], got %+v", all)
	}

	day, err := repo.ListTasks(context.Background(), ListFilter{Day: "2026-02-09"})
	if err != nil {
		t.Fatalf("list by day: %v", err)
	}
	if len(day) != 2 {
		t.Fatalf("expected 2 tasks on 2026-02-09, got %d", len(day))
	}

	open, err := repo.ListTasks(context.Background(), ListFilter{Day: "2026-02-09", OnlyIncomplete: true})
	if err != nil {
		t.Fatalf("list incomplete: %v", err)
	}
	if len(open) != 1 || open[0].ID != c.ID {
		t.Fatalf("expected only task c, got %+v", open)
	}

	limited, err := repo.ListTasks(context.Background(), ListFilter{Limit: 2})
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 tasks with limit, got %d", len(limited))
	}
}

func TestRoundTripPreservesFields(t *testing.T) {
	repo := setupRepo(t)
	created, err := repo.CreateTask(context.Background(), model.Task{
		Title:    "дз по матану",
		Day:      "2026-02-09",
		Time:     "15:00",
		Priority: model.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetTask(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != created.Title || got.Day != created.Day || got.Time != created.Time || got.Priority != created.Priority {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, created)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at mismatch: %v vs %v", got.CreatedAt, created.CreatedAt)
	}
}
