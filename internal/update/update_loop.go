package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"prokra/internal/calendar"
	"prokra/internal/model"
	"prokra/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForReplyCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.PendingReplies == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.thinkSpinner, cmd = m.thinkSpinner.Update(msg)
		return m, cmd

	case ReplyDueMsg:
		next, cmd := m.handleReplyDue(msg.Event)
		return next, cmd

	case SwitchPageMsg:
		m.CurrentPage = msg.Page
		m.TaskCursor = 0
		return m, nil

	case SetStatusMsg:
		m.Status = StatusBar{Text: msg.Text, IsError: msg.IsError}
		return m, nil

	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil

	case AppErrorMsg:
		m.fail(msg.Err)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlays and the chat input capture keystrokes before global keys.
	if m.Form.Active {
		next, cmd := m.handleFormKey(msg)
		return next, cmd
	}
	if m.Palette.Active {
		next, cmd := m.handlePaletteKey(msg)
		return next, cmd
	}
	if m.ChatFocused && m.CurrentPage == PageHome {
		next, cmd := m.handleChatKey(msg)
		return next, cmd
	}

	switch msg.String() {
	case m.Keys.Quit, "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case m.Keys.Home:
		m.CurrentPage = PageHome
		m.TaskCursor = 0
	case m.Keys.Tasks:
		m.CurrentPage = PageTasks
		m.TaskCursor = 0
	case m.Keys.Calendar:
		m.CurrentPage = PageCalendar
	case m.Keys.About:
		m.CurrentPage = PageAbout
	case m.Keys.AddTask:
		return m.openTaskForm(), nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		m.helpModel.ShowAll = m.HelpVisible
	case "/":
		m.Palette = CommandPaletteState{Active: true}
		m.commandInput.Reset()
		m.commandInput.Focus()
	case "i":
		if m.CurrentPage == PageHome {
			m.ChatFocused = true
			m.chatInput.Focus()
		}
	default:
		switch m.CurrentPage {
		case PageHome, PageTasks:
			return m.handleTaskListKey(msg), nil
		case PageCalendar:
			return m.handleCalendarKey(msg), nil
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return "Пока! Задачи никуда не денутся. 👋\n"
	}

	data := views.AppData{
		Header:     m.headerLine(),
		StatusLine: m.Status.Text,
		Footer:     m.helpModel.View(newHelpKeyMap(m.Keys)),
	}
	if m.Status.IsError {
		data.StatusLine = "error: " + m.Status.Text
	}
	if n := len(m.Notifications); n > 0 {
		last := m.Notifications[n-1]
		data.Notification = views.RenderNotification(last.Level, last.Title+": "+last.Body)
	}

	switch m.CurrentPage {
	case PageHome:
		data.LeftPane = m.chatPane()
		data.RightPane = m.energyPane()
	case PageTasks:
		data.LeftPane = m.tasksPane()
		data.RightPane = m.energyPane()
	case PageCalendar:
		data.LeftPane = m.calendarPane()
		data.RightPane = m.upcomingPane()
	case PageAbout:
		data.LeftPane = views.RenderAboutPage()
		data.RightPane = m.energyPane()
	}

	switch {
	case m.Form.Active:
		data.Overlay = views.RenderTaskForm(views.TaskFormData{
			Active:  true,
			Title:   m.formTitleInput.View(),
			Date:    m.formDateInput.View(),
			Time:    m.formTimeInput.View(),
			Focused: m.Form.Focus,
		})
	case m.Palette.Active:
		data.Overlay = views.RenderCommandPalette(true, m.commandInput.View())
	case m.HelpVisible:
		data.Overlay = views.RenderHelpPanel(views.HelpPanelData{
			CurrentPage: string(m.CurrentPage),
			Bindings:    pageBindings(m.CurrentPage),
			HelpView:    m.helpModel.View(newHelpKeyMap(m.Keys)),
		})
	}
	return views.RenderApp(data)
}

func (m Model) headerLine() string {
	return fmt.Sprintf("🚀 Прокрастинатор Онлайн — %s | импульс: %d", m.SelectedDate.Format("02.01.2006"), m.Pulse)
}

func (m Model) chatPane() string {
	lines := make([]views.ChatLineData, 0, len(m.Transcript))
	for _, msg := range m.Transcript {
		lines = append(lines, views.ChatLineData{
			Author:  string(msg.Author),
			Content: msg.Content,
			Clock:   msg.SentAt.Format("15:04"),
		})
	}
	thinking := ""
	if m.PendingReplies > 0 {
		thinking = m.thinkSpinner.View()
	}
	return views.RenderChatPanel(views.ChatPanelData{
		Lines:     lines,
		InputView: m.chatInput.View(),
		Thinking:  thinking,
	})
}

func (m Model) energyPane() string {
	return views.RenderEnergyPanel(views.EnergyPanelData{
		Level:   int(m.Energy),
		Status:  string(m.Energy.Status()),
		BarView: m.energyBar.ViewAs(float64(m.Energy) / float64(model.EnergyMax)),
		Today:   m.todayPanelData(),
	})
}

func (m Model) todayPanelData() views.TodayPanelData {
	today := m.todayTasks()
	return views.TodayPanelData{
		Items:       m.taskItems(today, m.CurrentPage == PageHome),
		Completed:   model.CompletedCount(today),
		Total:       len(today),
		ProgressPct: model.ProgressPercent(today),
	}
}

func (m Model) tasksPane() string {
	return views.RenderTasksPage(views.TasksPageData{
		Items:       m.taskItems(m.Tasks, true),
		Completed:   model.CompletedCount(m.Tasks),
		Total:       len(m.Tasks),
		ProgressPct: model.ProgressPercent(m.Tasks),
	})
}

func (m Model) calendarPane() string {
	today := m.clock()()
	cells := make([]views.CalendarCellData, 0, 42)
	for _, day := range m.Month.Days() {
		if day == nil {
			cells = append(cells, views.CalendarCellData{})
			continue
		}
		cells = append(cells, views.CalendarCellData{
			Day:       day.Day(),
			TaskCount: len(m.tasksOnDay(model.DayKey(*day))),
			IsToday:   model.DayKey(*day) == model.DayKey(today),
			IsCursor:  day.Day() == m.CursorDay,
		})
	}
	return views.RenderCalendarPanel(views.CalendarPanelData{
		Title:    m.Month.Title(),
		Weekdays: calendar.Weekdays[:],
		Cells:    cells,
	})
}

func (m Model) upcomingPane() string {
	items := model.Upcoming(m.Tasks, m.cfg.UpcomingLimit)
	return views.RenderUpcomingPanel(views.UpcomingPanelData{
		Items: m.taskItems(items, false),
	})
}

func (m Model) taskItems(tasks []model.Task, selectable bool) []views.TaskItemData {
	items := make([]views.TaskItemData, 0, len(tasks))
	for i, task := range tasks {
		items = append(items, views.TaskItemData{
			ID:        task.ID,
			Title:     task.Title,
			Completed: task.Completed,
			Time:      task.Time,
			Day:       task.Day,
			Selected:  selectable && i == m.TaskCursor,
		})
	}
	return items
}
