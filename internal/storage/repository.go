package storage

import (
	"context"
	"errors"

	"prokra/internal/model"
)

var ErrNotFound = errors.New("storage: not found")

// ListFilter narrows ListTasks. Zero value means the full list in insertion
// order.
type ListFilter struct {
	// Day filters to one calendar day key (model.DayLayout); empty keeps all.
	Day string
	// OnlyIncomplete drops completed tasks.
	OnlyIncomplete bool
	// Limit caps the result when > 0.
	Limit int
}

// Repository is the session's task store. IDs are assigned on create and
// stay unique for the process lifetime; rows are only ever changed by
// completion toggles and full removal.
type Repository interface {
	CreateTask(ctx context.Context, in model.Task) (model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	ToggleTask(ctx context.Context, id int64) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
	ListTasks(ctx context.Context, filter ListFilter) ([]model.Task, error)
	Close() error
}
