// Package chat holds the scripted side of the companion: canned reply
// selection and task-intent extraction from free text. Both are strategy
// types so a real language backend could replace them without touching the
// transcript state machine.
package chat

import (
	"math/rand"

	"prokra/internal/model"
)

// Greeting opens every session's transcript.
const Greeting = "Привет, прокрастинатор! 😎 Я твой AI-друг по борьбе с ленью! Расскажи, что хочешь сделать, пока TikTok не съел весь твой день!"

var cannedReplies = []string{
	"ОГО! Ты реально хочешь это сделать? Ладно, я поверю! 🤯",
	"Когда ты сделаешь это? Сейчас или когда мама начнет кричать \"УЖИН!\"? 😅",
	"БРО! Это же элементарно! Давай разобьем на микрозадачи, как TikTok-ролики!",
	"Я уже вижу твое лицо, когда ты поймешь, что сделал всё! 🏆",
	"Ты как тот парень из мемов: \"Планирую весь день\" vs \"Лежу в TikTok\" 🤡",
	"Отлично! Только не забудь потом сказать \"Я же говорил, что справлюсь!\" 💪",
	"Когда ты сделаешь это, я сделаю тебе виртуальный кофе! ☕ (но ты сам купишь настоящий)",
	"Это как уровень в игре! Сделаешь - ачивка \"Я не лентяй\"! 🎮",
}

// Responder selects the companion's reply once a pending one comes due.
type Responder interface {
	Reply(history []model.Message) string
}

// CannedResponder picks uniformly from the fixed reply list, ignoring the
// transcript entirely.
type CannedResponder struct {
	rng *rand.Rand
}

func NewCannedResponder(seed int64) *CannedResponder {
	return &CannedResponder{rng: rand.New(rand.NewSource(seed))}
}

func (r *CannedResponder) Reply([]model.Message) string {
	return cannedReplies[r.rng.Intn(len(cannedReplies))]
}

// Replies exposes the canned list so callers can assert membership.
func Replies() []string {
	out := make([]string, len(cannedReplies))
	copy(out, cannedReplies)
	return out
}
