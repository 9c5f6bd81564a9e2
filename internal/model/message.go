package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidAuthor = errors.New("model: invalid message author")

type Author string

const (
	AuthorUser Author = "user"
	AuthorAI   Author = "ai"
)

func (a Author) IsValid() bool {
	switch a {
	case AuthorUser, AuthorAI:
		return true
	default:
		return false
	}
}

// Message is one line of the chat transcript. The transcript is append-only
// and ordered by insertion; messages are never edited or deleted.
type Message struct {
	ID      int64
	Author  Author
	Content string
	SentAt  time.Time
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.Content) == "" {
		return errors.New("model: message content is required")
	}
	if !m.Author.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidAuthor, m.Author)
	}
	if m.SentAt.IsZero() {
		return errors.New("model: message sent_at is required")
	}
	return nil
}
