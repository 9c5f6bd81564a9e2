package chat

import (
	"regexp"
	"strings"
)

// Intent is a task-creation request recognized in free chat text.
type Intent struct {
	Title string
	Time  string
}

// The pattern looks for a lead verb followed by a description and an
// optional " в HH:MM" tail. The greedy prefix makes the last verb win, so
// "нужно сделать отчет в 15:00" yields title "отчет", not "сделать отчет".
var intentPattern = regexp.MustCompile(`(?i)^(?:.*\s)?(?:сделать|выполнить|запланировать|нужно|хочу|надо)\s+(.+?)(?:\s+в\s+(\d{1,2}:\d{2}))?\s*$`)

// ExtractIntent reports whether text asks for a task and, if so, the captured
// title and optional time. A blank capture falls back to the raw input as the
// title; that quirk is kept on purpose.
func ExtractIntent(text string) (Intent, bool) {
	groups := intentPattern.FindStringSubmatch(text)
	if groups == nil {
		return Intent{}, false
	}
	title := strings.TrimSpace(groups[1])
	if title == "" {
		title = strings.TrimSpace(text)
	}
	return Intent{Title: title, Time: strings.TrimSpace(groups[2])}, true
}
