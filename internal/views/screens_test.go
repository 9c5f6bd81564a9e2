package views

import (
	"strings"
	"testing"
)

func TestEnergyLabelKnownStatuses(t *testing.T) {
	cases := map[string]string{
		"champion":     "ЧЕМПИОН! 🏆",
		"hot":          "ГОРЯЧИЙ! 🔥",
		"needs coffee": "НАДО КОФЕ! ☕",
		"critical":     "СПАСАЙТЕ! 😵",
		"idle":         "Zzz... 💤",
	}
	for status, want := range cases {
		if got := EnergyLabel(status); got != want {
			t.Fatalf("status %q: expected %q, got %q", status, want, got)
		}
	}
	if got := EnergyLabel("unknown"); got != "unknown" {
		t.Fatalf("unknown status must pass through, got %q", got)
	}
}

func TestRenderCalendarPanelGrid(t *testing.T) {
	data := CalendarPanelData{
		Title:    "февраль 2026",
		Weekdays: []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"},
		Cells: []CalendarCellData{
			{}, {}, {}, {}, {}, {},
			{Day: 1, IsToday: true},
			{Day: 2, IsCursor: true},
			{Day: 3, TaskCount: 2},
		},
	}
	out := RenderCalendarPanel(data)
	if !strings.Contains(out, "февраль 2026") {
		t.Fatalf("missing title: %q", out)
	}
	if !strings.Contains(out, "Пн") || !strings.Contains(out, "Вс") {
		t.Fatalf("missing weekday headers: %q", out)
	}
	if !strings.Contains(out, "[ 1]") {
		t.Fatalf("missing today marker: %q", out)
	}
	if !strings.Contains(out, "> 2*") {
		t.Fatalf("missing cursor marker: %q", out)
	}
	if !strings.Contains(out, ".") {
		t.Fatalf("missing placeholder cells: %q", out)
	}
}

func TestRenderChatPanelMarksAuthors(t *testing.T) {
	out := RenderChatPanel(ChatPanelData{
		Lines: []ChatLineData{
			{Author: "ai", Content: "привет", Clock: "12:00"},
			{Author: "user", Content: "надо дз", Clock: "12:01"},
		},
		InputView: "> ",
	})
	if !strings.Contains(out, "ai") || !strings.Contains(out, "ты") {
		t.Fatalf("missing author markers: %q", out)
	}
	if !strings.Contains(out, "привет") || !strings.Contains(out, "надо дз") {
		t.Fatalf("missing message content: %q", out)
	}
}

func TestRenderUpcomingPanel(t *testing.T) {
	out := RenderUpcomingPanel(UpcomingPanelData{
		Items: []TaskItemData{
			{Title: "отчет", Day: "2026-02-09", Time: "15:00"},
			{Title: "хлеб", Day: "2026-02-10"},
		},
	})
	if !strings.Contains(out, "2026-02-09 отчет в 15:00") {
		t.Fatalf("missing timed entry: %q", out)
	}
	if !strings.Contains(out, "2026-02-10 хлеб") {
		t.Fatalf("missing untimed entry: %q", out)
	}

	empty := RenderUpcomingPanel(UpcomingPanelData{})
	if !strings.Contains(empty, "MVP") {
		t.Fatalf("missing empty-state line: %q", empty)
	}
}

func TestRenderTaskFormFocusMarker(t *testing.T) {
	out := RenderTaskForm(TaskFormData{
		Active:  true,
		Title:   "дз",
		Date:    "2026-02-09",
		Time:    "",
		Focused: "date",
	})
	if !strings.Contains(out, "дата") || !strings.Contains(out, "2026-02-09") {
		t.Fatalf("missing date field: %q", out)
	}
	if RenderTaskForm(TaskFormData{}) != "" {
		t.Fatal("inactive form must render nothing")
	}
}
