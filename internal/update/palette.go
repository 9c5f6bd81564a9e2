package update

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"prokra/internal/commands"
	"prokra/internal/model"
	"prokra/internal/storage"
)

// paletteHandlers binds the parsed palette commands to model mutations.
// The handlers close over a pointer so the palette acts on the live state.
func paletteHandlers(m *Model) commands.Handlers {
	return commands.Handlers{
		Add: func(args commands.AddArgs) (commands.Result, error) {
			if !m.createTask(args.Title, args.Time, model.DayKey(m.SelectedDate), model.CreditManualTask) {
				return commands.Result{}, fmt.Errorf("add %q: task was not created", args.Title)
			}
			return commands.Result{Message: "добавлено: " + args.Title}, nil
		},
		Done: func(args commands.DoneArgs) (commands.Result, error) {
			if m.repo != nil {
				if _, err := m.repo.GetTask(context.Background(), args.ID); errors.Is(err, storage.ErrNotFound) {
					return commands.Result{}, fmt.Errorf("done: задача #%d не найдена", args.ID)
				}
			}
			m.toggleTask(args.ID)
			return commands.Result{Message: fmt.Sprintf("переключено: #%d", args.ID)}, nil
		},
		Delete: func(args commands.DeleteArgs) (commands.Result, error) {
			m.deleteTask(args.ID)
			return commands.Result{Message: fmt.Sprintf("удалено: #%d", args.ID)}, nil
		},
		Goto: func(args commands.GotoArgs) (commands.Result, error) {
			switch args.Page {
			case "home":
				m.CurrentPage = PageHome
			case "tasks":
				m.CurrentPage = PageTasks
			case "calendar":
				m.CurrentPage = PageCalendar
			case "about":
				m.CurrentPage = PageAbout
			default:
				return commands.Result{}, fmt.Errorf("goto: неизвестная страница %q", args.Page)
			}
			return commands.Result{Message: "страница: " + args.Page}, nil
		},
	}
}

// handlePaletteKey runs the command line overlay. Enter parses and executes,
// esc closes without running anything.
func (m Model) handlePaletteKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette = CommandPaletteState{}
		return m, nil
	case "enter":
		input := strings.TrimSpace(m.commandInput.Value())
		m.Palette = CommandPaletteState{}
		m.commandInput.Reset()
		cmd, err := commands.Parse(input)
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		res, err := commands.Execute(cmd, paletteHandlers(&m))
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: res.Message, IsError: false}
		return m, nil
	}
	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	m.Palette.Input = m.commandInput.Value()
	return m, cmd
}
