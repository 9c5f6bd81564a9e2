package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/rs/zerolog"

	"prokra/internal/calendar"
	"prokra/internal/chat"
	"prokra/internal/model"
	"prokra/internal/scheduler"
	"prokra/internal/storage"
)

type Page string

const (
	PageHome     Page = "Home"
	PageTasks    Page = "Tasks"
	PageCalendar Page = "Calendar"
	PageAbout    Page = "About"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home     string
	Tasks    string
	Calendar string
	About    string
	AddTask  string
	Help     string
	Quit     string
}

type TaskFormState struct {
	Active bool
	Focus  string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

// Model owns all session state: the transcript, the task snapshot, the
// energy meter and the calendar position. Everything dies with the process.
type Model struct {
	CurrentPage    Page
	Transcript     []model.Message
	PendingReplies int
	SelectedDate   time.Time
	Energy         model.EnergyLevel
	Pulse          int
	Month          calendar.Month
	CursorDay      int
	TaskCursor     int
	Tasks          []model.Task
	ChatFocused    bool
	Form           TaskFormState
	Palette        CommandPaletteState
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	repo      storage.Repository
	Scheduler *scheduler.Engine
	responder chat.Responder
	notifier  DesktopNotifier
	log       zerolog.Logger
	cfg       RuntimeConfig
	now       func() time.Time
	nextMsgID int64

	// Bubble components used for rich TUI controls
	chatInput      textinput.Model
	formTitleInput textinput.Model
	formDateInput  textinput.Model
	formTimeInput  textinput.Model
	commandInput   textinput.Model
	transcriptView viewport.Model
	energyBar      progress.Model
	thinkSpinner   spinner.Model
	helpModel      help.Model
}

type SwitchPageMsg struct {
	Page Page
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type ReplyDueMsg struct {
	Event scheduler.ReplyEvent
}

func NewModel(repo storage.Repository) Model {
	return NewModelWithConfig(repo, nil, nil, nil, DefaultRuntimeConfig(), zerolog.Nop())
}

func NewModelWithConfig(
	repo storage.Repository,
	engine *scheduler.Engine,
	responder chat.Responder,
	notifier DesktopNotifier,
	cfg RuntimeConfig,
	log zerolog.Logger,
) Model {
	now := time.Now().UTC()
	m := Model{
		CurrentPage:    PageHome,
		SelectedDate:   now,
		Month:          calendar.MonthOf(now),
		CursorDay:      now.Day(),
		ChatFocused:    true,
		DesktopEnabled: cfg.DesktopNotifications,
		Keys: GlobalKeyMap{
			Home:     "1",
			Tasks:    "2",
			Calendar: "3",
			About:    "4",
			AddTask:  "a",
			Help:     "?",
			Quit:     "q",
		},
		repo:      repo,
		Scheduler: engine,
		responder: responder,
		notifier:  NoopDesktopNotifier{},
		log:       log,
		cfg:       cfg,
		now:       time.Now,
	}
	if m.responder == nil {
		m.responder = chat.NewCannedResponder(now.UnixNano())
	}
	if notifier != nil {
		m.notifier = notifier
	}
	m.initBubbleComponents()
	m.appendMessage(model.AuthorAI, chat.Greeting)
	m.syncTranscriptView()
	m.refreshTasks()
	return m
}

func (m *Model) initBubbleComponents() {
	m.chatInput = textinput.New()
	m.chatInput.Placeholder = "нужно сделать дз в 15:00..."
	m.chatInput.CharLimit = 200
	m.chatInput.Focus()

	m.formTitleInput = textinput.New()
	m.formTitleInput.Placeholder = "сделать дз чтобы не получить двойку"
	m.formTitleInput.CharLimit = 120

	m.formDateInput = textinput.New()
	m.formDateInput.Placeholder = model.DayLayout
	m.formDateInput.CharLimit = 10

	m.formTimeInput = textinput.New()
	m.formTimeInput.Placeholder = "15:04"
	m.formTimeInput.CharLimit = 5

	m.commandInput = textinput.New()
	m.commandInput.Placeholder = "add купить хлеб в 15:00"
	m.commandInput.CharLimit = 120

	m.transcriptView = viewport.New(54, 10)
	m.energyBar = progress.New(progress.WithDefaultGradient())
	m.thinkSpinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.helpModel = help.New()
}

// appendMessage grows the append-only transcript; ids count up from 1.
func (m *Model) appendMessage(author model.Author, content string) model.Message {
	m.nextMsgID++
	msg := model.Message{
		ID:      m.nextMsgID,
		Author:  author,
		Content: content,
		SentAt:  m.clock()(),
	}
	m.Transcript = append(m.Transcript, msg)
	return msg
}

// refreshTasks reloads the full snapshot after a mutation; derived values
// are recomputed from it on render.
func (m *Model) refreshTasks() {
	if m.repo == nil {
		return
	}
	tasks, err := m.repo.ListTasks(context.Background(), storage.ListFilter{})
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return
	}
	m.Tasks = tasks
	if m.TaskCursor >= len(m.Tasks) {
		m.TaskCursor = len(m.Tasks) - 1
	}
	if m.TaskCursor < 0 {
		m.TaskCursor = 0
	}
}

func (m Model) clock() func() time.Time {
	if m.now != nil {
		return m.now
	}
	return time.Now
}

func (m Model) todayTasks() []model.Task {
	day := model.DayKey(m.SelectedDate)
	out := make([]model.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		if t.Day == day {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) tasksOnDay(day string) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range m.Tasks {
		if t.Day == day {
			out = append(out, t)
		}
	}
	return out
}
