package app

import (
	"fmt"
	"time"
)

// StatusMessage is a one-line transient message shown below the status bar.
// It expires after a fixed interval; an expired message reads as empty.
type StatusMessage struct {
	text  string
	setAt time.Time
	ttl   time.Duration

	now func() time.Time
}

// NewStatusMessage creates a message slot with the given lifetime.
func NewStatusMessage(ttl time.Duration) *StatusMessage {
	return &StatusMessage{ttl: ttl, now: time.Now}
}

// Set replaces the message and restarts its lifetime.
func (m *StatusMessage) Set(format string, args ...any) {
	m.text = fmt.Sprintf(format, args...)
	m.setAt = m.now()
}

// Clear removes the message immediately.
func (m *StatusMessage) Clear() {
	m.text = ""
}

// Text returns the message, or the empty string once it has expired.
func (m *StatusMessage) Text() string {
	if m.text == "" {
		return ""
	}
	if m.now().Sub(m.setAt) > m.ttl {
		return ""
	}
	return m.text
}
