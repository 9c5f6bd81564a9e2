package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// handleCalendarKey moves the month/day cursors and lets enter hand the
// highlighted day to the task form. Switching months clamps the day cursor
// to the new month's length.
func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "left":
		m.Month = m.Month.Navigate(-1)
		m.clampCursorDay()
	case "l", "right":
		m.Month = m.Month.Navigate(1)
		m.clampCursorDay()
	case "j", "down":
		if m.CursorDay+7 <= m.Month.DayCount() {
			m.CursorDay += 7
		}
	case "k", "up":
		if m.CursorDay-7 >= 1 {
			m.CursorDay -= 7
		}
	case "n":
		if m.CursorDay < m.Month.DayCount() {
			m.CursorDay++
		}
	case "p":
		if m.CursorDay > 1 {
			m.CursorDay--
		}
	case "enter":
		day := time.Date(m.Month.Year, m.Month.Month, m.CursorDay, 0, 0, 0, 0, time.UTC)
		m.Form = TaskFormState{Active: true, Focus: "title"}
		m.formTitleInput.Reset()
		m.formDateInput.SetValue(day.Format("2006-01-02"))
		m.formTimeInput.Reset()
		m.formTitleInput.Focus()
		m.Status = StatusBar{Text: fmt.Sprintf("новая задача на %s", day.Format("02.01.2006")), IsError: false}
	}
	return m
}

func (m *Model) clampCursorDay() {
	if max := m.Month.DayCount(); m.CursorDay > max {
		m.CursorDay = max
	}
	if m.CursorDay < 1 {
		m.CursorDay = 1
	}
}
