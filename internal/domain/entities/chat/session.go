// Package chat defines the assistant widget's session state: an ordered
// transcript plus an explicit two-state response mode.
package chat

import (
	"sync"
	"time"
)

// Sender tags who produced a transcript message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Mode is the session's response strategy. The transition is one-way:
// once a session goes local-only it never becomes remote-eligible again.
type Mode string

const (
	ModeRemoteEligible Mode = "remote-eligible"
	ModeLocalOnly      Mode = "local-only"
)

// Message is one transcript entry
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// Session holds the ordered message list and the sticky response mode for
// one widget instance.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	lastAccessed time.Time
	mode         Mode
	messages     []*Message
}

// NewSession creates a session in the given starting mode
func NewSession(id string, mode Mode) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:           id,
		CreatedAt:    now,
		lastAccessed: now,
		mode:         mode,
	}
}

// Mode returns the session's current response mode
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// EngageLocalMode moves the session to local-only. The transition is
// monotonic; calling it again is a no-op and nothing ever reverses it.
func (s *Session) EngageLocalMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeLocalOnly
}

// Append adds a message to the end of the transcript and returns it
func (s *Session) Append(id, text string, sender Sender) *Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &Message{
		ID:        id,
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now().UTC(),
	}
	s.messages = append(s.messages, msg)
	s.lastAccessed = msg.Timestamp
	return msg
}

// Messages returns a snapshot of the transcript in append order
func (s *Session) Messages() []*Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Touch refreshes the last-access timestamp used for TTL expiry
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastAccessed = time.Now().UTC()
}

// LastAccessedAt reports when the session was last written to
func (s *Session) LastAccessedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastAccessed
}
