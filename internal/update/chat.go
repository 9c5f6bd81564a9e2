package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"prokra/internal/chat"
	"prokra/internal/model"
	"prokra/internal/scheduler"
)

// waitForReplyCmd blocks on the scheduler's output channel and resurfaces
// the fired event as a bubbletea message. Re-armed after every delivery.
func waitForReplyCmd(ch <-chan scheduler.ReplyEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReplyDueMsg{Event: ev}
	}
}

// submitChat takes the current input line, records it as a user message and
// schedules the assistant reply one delay from now. Blank input is ignored.
func (m Model) submitChat() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.chatInput.Value())
	if text == "" {
		return m, nil
	}
	m.chatInput.Reset()
	m.appendMessage(model.AuthorUser, text)
	m.syncTranscriptView()

	trigger := m.clock()().Add(time.Duration(m.cfg.ReplyDelayMS) * time.Millisecond)
	ev := scheduler.ReplyEvent{ID: m.nextMsgID, UserText: text, TriggerAt: trigger}
	if m.Scheduler != nil {
		if err := m.Scheduler.Schedule(ev); err != nil {
			m.fail(err)
			return m, nil
		}
		m.PendingReplies++
		m.log.Debug().Int64("event", ev.ID).Time("trigger_at", trigger).Msg("reply scheduled")
		return m, m.thinkSpinner.Tick
	}
	return m, nil
}

// handleReplyDue lands a fired reply: the canned answer joins the
// transcript, and if the user's line parsed as a task intent the task is
// created on the selected day with the chat credit.
func (m Model) handleReplyDue(ev scheduler.ReplyEvent) (Model, tea.Cmd) {
	if m.PendingReplies > 0 {
		m.PendingReplies--
	}
	reply := chat.Greeting
	if m.responder != nil {
		reply = m.responder.Reply(m.Transcript)
	}
	m.appendMessage(model.AuthorAI, reply)

	if intent, ok := chat.ExtractIntent(ev.UserText); ok {
		day := model.DayKey(m.SelectedDate)
		if m.createTask(intent.Title, intent.Time, day, model.CreditChatTask) {
			m.notify("Новая задача", intent.Title, "info")
			m.Status = StatusBar{Text: "задача добавлена из чата: " + intent.Title, IsError: false}
		}
	}
	m.syncTranscriptView()

	cmds := []tea.Cmd{waitForReplyCmd(m.Scheduler.C())}
	if m.PendingReplies > 0 {
		cmds = append(cmds, m.thinkSpinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleChatKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	case "esc":
		m.ChatFocused = false
		m.chatInput.Blur()
		return m, nil
	case "enter":
		return m.submitChat()
	}
	var cmd tea.Cmd
	m.chatInput, cmd = m.chatInput.Update(msg)
	return m, cmd
}

// syncTranscriptView rebuilds the viewport content and keeps it pinned to
// the newest message.
func (m *Model) syncTranscriptView() {
	var b strings.Builder
	for i, msg := range m.Transcript {
		if i > 0 {
			b.WriteByte('\n')
		}
		label := "Вы"
		if msg.Author == model.AuthorAI {
			label = "Бот"
		}
		b.WriteString(label)
		b.WriteString(" [")
		b.WriteString(msg.SentAt.Format("15:04"))
		b.WriteString("]: ")
		b.WriteString(msg.Content)
	}
	m.transcriptView.SetContent(b.String())
	m.transcriptView.GotoBottom()
}
