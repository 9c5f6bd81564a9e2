package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"prokra/internal/model"
)

var formFields = []string{"title", "date", "time"}

// openTaskForm shows the overlay pre-filled with the selected day.
func (m Model) openTaskForm() Model {
	m.Form = TaskFormState{Active: true, Focus: "title"}
	m.formTitleInput.Reset()
	m.formDateInput.SetValue(model.DayKey(m.SelectedDate))
	m.formTimeInput.Reset()
	m.formTitleInput.Focus()
	m.formDateInput.Blur()
	m.formTimeInput.Blur()
	return m
}

// handleFormKey drives the add-task overlay: tab cycles fields, enter
// submits with the manual-entry credit, esc cancels. A blank title closes
// nothing and creates nothing.
func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Form = TaskFormState{}
		return m, nil
	case "tab", "shift+tab":
		step := 1
		if msg.String() == "shift+tab" {
			step = len(formFields) - 1
		}
		m.Form.Focus = formFields[(formFieldIndex(m.Form.Focus)+step)%len(formFields)]
		m.formTitleInput.Blur()
		m.formDateInput.Blur()
		m.formTimeInput.Blur()
		switch m.Form.Focus {
		case "title":
			m.formTitleInput.Focus()
		case "date":
			m.formDateInput.Focus()
		case "time":
			m.formTimeInput.Focus()
		}
		return m, nil
	case "enter":
		title := strings.TrimSpace(m.formTitleInput.Value())
		if title == "" {
			return m, nil
		}
		day := strings.TrimSpace(m.formDateInput.Value())
		if _, err := time.Parse(model.DayLayout, day); err != nil {
			day = model.DayKey(m.SelectedDate)
		}
		if m.createTask(title, m.formTimeInput.Value(), day, model.CreditManualTask) {
			m.Status = StatusBar{Text: "задача добавлена: " + title, IsError: false}
			m.notify("Новая задача", title, "info")
		}
		m.Form = TaskFormState{}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Form.Focus {
	case "title":
		m.formTitleInput, cmd = m.formTitleInput.Update(msg)
	case "date":
		m.formDateInput, cmd = m.formDateInput.Update(msg)
	case "time":
		m.formTimeInput, cmd = m.formTimeInput.Update(msg)
	}
	return m, cmd
}

func formFieldIndex(focus string) int {
	for i, f := range formFields {
		if f == focus {
			return i
		}
	}
	return 0
}
