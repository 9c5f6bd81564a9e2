package views

import (
	"fmt"
	"strings"
)

type ChatLineData struct {
	Author  string
	Content string
	Clock   string
}

type ChatPanelData struct {
	Lines     []ChatLineData
	InputView string
	Thinking  string
}

type TaskItemData struct {
	ID        int64
	Title     string
	Completed bool
	Time      string
	Day       string
	Selected  bool
}

type TodayPanelData struct {
	Items       []TaskItemData
	Completed   int
	Total       int
	ProgressPct int
}

type EnergyPanelData struct {
	Level   int
	Status  string
	BarView string
	Today   TodayPanelData
}

type TasksPageData struct {
	Items       []TaskItemData
	Completed   int
	Total       int
	ProgressPct int
}

type CalendarCellData struct {
	Day       int
	TaskCount int
	IsToday   bool
	IsCursor  bool
}

type CalendarPanelData struct {
	Title    string
	Weekdays []string
	Cells    []CalendarCellData
}

type UpcomingPanelData struct {
	Items []TaskItemData
}

type TaskFormData struct {
	Active  bool
	Title   string
	Date    string
	Time    string
	Focused string
}

type HelpPanelData struct {
	CurrentPage string
	Bindings    []string
	HelpView    string
}

// Russian meter labels keyed by the tracker's status.
var energyLabels = map[string]string{
	"champion":     "ЧЕМПИОН! 🏆",
	"hot":          "ГОРЯЧИЙ! 🔥",
	"needs coffee": "НАДО КОФЕ! ☕",
	"critical":     "СПАСАЙТЕ! 😵",
	"idle":         "Zzz... 💤",
}

func EnergyLabel(status string) string {
	if label, ok := energyLabels[status]; ok {
		return label
	}
	return status
}

func RenderChatPanel(data ChatPanelData) string {
	var b strings.Builder
	b.WriteString("чат с AI-другом:\n")
	for _, line := range data.Lines {
		marker := "  ai"
		if line.Author == "user" {
			marker = "  ты"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s\n", marker, line.Clock, line.Content))
	}
	if data.Thinking != "" {
		b.WriteString(data.Thinking + " думает...\n")
	}
	b.WriteString("\n" + data.InputView)
	return strings.TrimSpace(b.String())
}

func RenderEnergyPanel(data EnergyPanelData) string {
	var b strings.Builder
	b.WriteString("уровень энергии:\n")
	b.WriteString(fmt.Sprintf("%s %d%%\n", data.BarView, data.Level))
	b.WriteString(EnergyLabel(data.Status) + "\n")
	b.WriteString("\nзадачи на сегодня:\n")
	if data.Today.Total == 0 {
		b.WriteString("(нет задач на сегодня — или ты просто скрываешься? 🤔)\n")
	} else {
		b.WriteString(fmt.Sprintf("прогресс: %d%% (%d из %d)\n", data.Today.ProgressPct, data.Today.Completed, data.Today.Total))
		renderTaskLines(&b, data.Today.Items)
	}
	return strings.TrimSpace(b.String())
}

func RenderTasksPage(data TasksPageData) string {
	var b strings.Builder
	b.WriteString("все задачи:\n")
	if data.Total == 0 {
		b.WriteString("(нет задач — создай первую и стань легендой! 🦸)\n")
		return strings.TrimSpace(b.String())
	}
	b.WriteString(fmt.Sprintf("всего: %d | выполнено: %d | прогресс: %d%%\n", data.Total, data.Completed, data.ProgressPct))
	renderTaskLines(&b, data.Items)
	return strings.TrimSpace(b.String())
}

func RenderCalendarPanel(data CalendarPanelData) string {
	var b strings.Builder
	b.WriteString("календарь: " + data.Title + "\n")
	b.WriteString(strings.Join(data.Weekdays, "  ") + "\n")
	col := 0
	for _, cell := range data.Cells {
		switch {
		case cell.Day == 0:
			b.WriteString("  . ")
		case cell.IsCursor:
			b.WriteString(fmt.Sprintf(">%2d*", cell.Day))
		case cell.IsToday:
			b.WriteString(fmt.Sprintf("[%2d]", cell.Day))
		case cell.TaskCount > 0:
			b.WriteString(fmt.Sprintf("%3d•", cell.Day))
		default:
			b.WriteString(fmt.Sprintf("%3d ", cell.Day))
		}
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	return strings.TrimSpace(b.String())
}

func RenderUpcomingPanel(data UpcomingPanelData) string {
	var b strings.Builder
	b.WriteString("ближайшие задачи:\n")
	if len(data.Items) == 0 {
		b.WriteString("(все задачи выполнены — ты настоящий MVP! 🏆)")
		return b.String()
	}
	for _, item := range data.Items {
		b.WriteString(fmt.Sprintf("- %s %s", item.Day, item.Title))
		if item.Time != "" {
			b.WriteString(" в " + item.Time)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderTaskForm(data TaskFormData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	b.WriteString("новая задача:\n")
	b.WriteString("keys: [tab] поле [enter] добавить [esc] закрыть\n")
	b.WriteString(formField("что сделать", data.Title, data.Focused == "title"))
	b.WriteString(formField("дата", data.Date, data.Focused == "date"))
	b.WriteString(formField("время (опционально)", data.Time, data.Focused == "time"))
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\npage: %s\n%s\n%s",
		strings.ToLower(data.CurrentPage),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func renderTaskLines(b *strings.Builder, items []TaskItemData) {
	for _, item := range items {
		cursor := " "
		if item.Selected {
			cursor = ">"
		}
		check := "[ ]"
		title := item.Title
		if item.Completed {
			check = "[x]"
			title = doneStyle.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s %s #%d %s", cursor, check, item.ID, title))
		if item.Time != "" {
			b.WriteString(" ⏰ " + item.Time)
		}
		if item.Day != "" {
			b.WriteString(" (" + item.Day + ")")
		}
		b.WriteString("\n")
	}
}

func formField(label, view string, focused bool) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	return fmt.Sprintf("%s%s: %s\n", marker, label, view)
}
