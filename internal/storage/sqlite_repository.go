package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"prokra/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteRepository keeps the task list in an in-memory SQLite database. The
// session never touches disk: state is created on open and gone on close.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) (*SQLiteRepository, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteRepository{db: db}, nil
}

// OpenMemory opens a fresh in-memory database and applies the schema. The
// pool is pinned to one connection because every new connection to :memory:
// would get its own empty database.
func OpenMemory() (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	repo, err := NewSQLiteRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask inserts the task and returns it with the assigned id.
// AUTOINCREMENT guarantees ids are unique and increasing for the session.
func (r *SQLiteRepository) CreateTask(ctx context.Context, in model.Task) (model.Task, error) {
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	in.Completed = false
	if err := in.Validate(); err != nil {
		return model.Task{}, err
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (title, completed, time, day, priority, created_at)
		VALUES (?, 0, ?, ?, ?, ?)`,
		in.Title, in.Time, in.Day, string(in.Priority), in.CreatedAt.Format(sqliteTimeLayout),
	)
	if err != nil {
		return model.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, err
	}
	in.ID = id
	return in, nil
}

func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, completed, time, day, priority, created_at
		FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, ErrNotFound
		}
		return model.Task{}, err
	}
	return task, nil
}

// ToggleTask flips the completed flag and returns the updated task.
func (r *SQLiteRepository) ToggleTask(ctx context.Context, id int64) (model.Task, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = 1 - completed WHERE id = ?`, id)
	if err != nil {
		return model.Task{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return model.Task{}, err
	}
	if affected == 0 {
		return model.Task{}, ErrNotFound
	}
	return r.GetTask(ctx, id)
}

func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTasks returns tasks in insertion (id) order.
func (r *SQLiteRepository) ListTasks(ctx context.Context, filter ListFilter) ([]model.Task, error) {
	query := `SELECT id, title, completed, time, day, priority, created_at FROM tasks`
	clauses := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if filter.Day != "" {
		clauses = append(clauses, "day = ?")
		args = append(args, filter.Day)
	}
	if filter.OnlyIncomplete {
		clauses = append(clauses, "completed = 0")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Task, 0)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, task)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		task      model.Task
		completed int
		priority  string
		createdAt string
	)
	if err := row.Scan(&task.ID, &task.Title, &completed, &task.Time, &task.Day, &priority, &createdAt); err != nil {
		return model.Task{}, err
	}
	task.Completed = completed != 0
	task.Priority = model.Priority(priority)
	created, err := time.Parse(sqliteTimeLayout, createdAt)
	if err != nil {
		return model.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	task.CreatedAt = created
	return task, nil
}
