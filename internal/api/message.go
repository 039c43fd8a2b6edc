package api

import (
	"fmt"
	"time"
)

// Message defines a message that should be sent to the user or group.
type Message struct {
	Text  string
	Level Level
	Time  time.Time
}

// NewMessage creates a new message.
func NewMessage(txt string) *Message {
	return &Message{
		Text:  txt,
		Level: Info,
		Time:  time.Now(),
	}
}

// WithLevel sets the severity of the message.
func (m *Message) WithLevel(level Level) *Message {
	m.Level = level
	return m
}

// AddLine adds a line argument to the message.
func (m *Message) AddLine(txt string) *Message {
	m.Text = fmt.Sprintf("%s\n%s", m.Text, txt)
	return m
}
