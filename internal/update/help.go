package update

import (
	"github.com/charmbracelet/bubbles/key"
)

// helpKeyMap adapts the app bindings to the bubbles help widget.
type helpKeyMap struct {
	Home     key.Binding
	Tasks    key.Binding
	Calendar key.Binding
	About    key.Binding
	AddTask  key.Binding
	Chat     key.Binding
	Palette  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newHelpKeyMap(keys GlobalKeyMap) helpKeyMap {
	return helpKeyMap{
		Home:     key.NewBinding(key.WithKeys(keys.Home), key.WithHelp(keys.Home, "дом")),
		Tasks:    key.NewBinding(key.WithKeys(keys.Tasks), key.WithHelp(keys.Tasks, "задачи")),
		Calendar: key.NewBinding(key.WithKeys(keys.Calendar), key.WithHelp(keys.Calendar, "календарь")),
		About:    key.NewBinding(key.WithKeys(keys.About), key.WithHelp(keys.About, "о проекте")),
		AddTask:  key.NewBinding(key.WithKeys(keys.AddTask), key.WithHelp(keys.AddTask, "новая задача")),
		Chat:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "чат")),
		Palette:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "команда")),
		Help:     key.NewBinding(key.WithKeys(keys.Help), key.WithHelp(keys.Help, "помощь")),
		Quit:     key.NewBinding(key.WithKeys(keys.Quit, "ctrl+c"), key.WithHelp(keys.Quit, "выход")),
	}
}

func (k helpKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Home, k.Tasks, k.Calendar, k.AddTask, k.Help, k.Quit}
}

func (k helpKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Tasks, k.Calendar, k.About},
		{k.AddTask, k.Chat, k.Palette},
		{k.Help, k.Quit},
	}
}

// pageBindings lists the context keys shown on the help overlay.
func pageBindings(page Page) []string {
	common := []string{
		"1/2/3/4  страницы",
		"a        новая задача",
		"/        командная строка",
		"?        помощь",
		"q        выход",
	}
	switch page {
	case PageHome:
		return append([]string{
			"i        фокус в чат (esc — выйти)",
			"j/k      курсор по задачам",
			"space    переключить задачу",
			"x        удалить задачу",
		}, common...)
	case PageTasks:
		return append([]string{
			"j/k      курсор по задачам",
			"space    переключить задачу",
			"x        удалить задачу",
		}, common...)
	case PageCalendar:
		return append([]string{
			"h/l      месяц назад/вперёд",
			"j/k      неделя вниз/вверх",
			"n/p      день вперёд/назад",
			"enter    задача на выбранный день",
		}, common...)
	default:
		return common
	}
}
