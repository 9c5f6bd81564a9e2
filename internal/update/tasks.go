package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"prokra/internal/model"
	"prokra/internal/storage"
)

// createTask runs one task creation against the store and credits the
// energy meter with the amount the entry path earns. An empty trimmed title
// is rejected as a silent no-op.
func (m *Model) createTask(title, clock, day string, credit int) bool {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" || m.repo == nil {
		return false
	}
	task, err := m.repo.CreateTask(context.Background(), model.Task{
		Title: trimmed,
		Time:  strings.TrimSpace(clock),
		Day:   day,
	})
	if err != nil {
		m.fail(err)
		return false
	}
	m.Energy = m.Energy.Credit(credit)
	m.Pulse++
	m.refreshTasks()
	m.log.Debug().Int64("task", task.ID).Str("day", day).Msg("task created")
	return true
}

// toggleTask flips completion. A lookup miss stays silent, and the meter is
// credited on every toggle regardless of direction.
func (m *Model) toggleTask(id int64) {
	if m.repo == nil {
		return
	}
	if _, err := m.repo.ToggleTask(context.Background(), id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		m.fail(err)
		return
	}
	m.Energy = m.Energy.Credit(model.CreditToggle)
	m.Pulse++
	m.refreshTasks()
}

func (m *Model) deleteTask(id int64) {
	if m.repo == nil {
		return
	}
	if err := m.repo.DeleteTask(context.Background(), id); err != nil && !errors.Is(err, storage.ErrNotFound) {
		m.fail(err)
		return
	}
	m.refreshTasks()
}

func (m *Model) fail(err error) {
	m.LastError = err
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	m.log.Error().Err(err).Msg("operation failed")
}

// visibleTasks is the slice the task cursor walks on the current page:
// today's tasks on Home, the full list on Tasks.
func (m Model) visibleTasks() []model.Task {
	if m.CurrentPage == PageHome {
		return m.todayTasks()
	}
	return m.Tasks
}

func (m Model) handleTaskListKey(msg tea.KeyMsg) Model {
	visible := m.visibleTasks()
	switch msg.String() {
	case "up", "k":
		if m.TaskCursor > 0 {
			m.TaskCursor--
		}
	case "down", "j":
		if m.TaskCursor < len(visible)-1 {
			m.TaskCursor++
		}
	case " ":
		if task, ok := taskAt(visible, m.TaskCursor); ok {
			m.toggleTask(task.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("задача #%d переключена", task.ID), IsError: false}
		}
	case "x":
		if task, ok := taskAt(visible, m.TaskCursor); ok {
			m.deleteTask(task.ID)
			m.Status = StatusBar{Text: fmt.Sprintf("задача #%d удалена", task.ID), IsError: false}
		}
	}
	return m
}

func taskAt(tasks []model.Task, cursor int) (model.Task, bool) {
	if cursor < 0 || cursor >= len(tasks) {
		return model.Task{}, false
	}
	return tasks[cursor], true
}
