// Package chat implements the site assistant: the dialogue engine, the
// lead-capture flow, and the appointment-booking wizard.
package chat

import (
	"sync"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// Topic is the coarse conversation category. It colors fallback phrasing
// and seeds the inferred service interest of captured leads; it does not
// gate which rules can match.
type Topic string

const (
	TopicWelcome   Topic = "welcome"
	TopicAI        Topic = "ai"
	TopicWeb       Topic = "web"
	TopicContent   Topic = "content"
	TopicPricing   Topic = "pricing"
	TopicQuestions Topic = "questions"
)

// ServiceInterest maps a topic to the service label recorded on leads.
func (t Topic) ServiceInterest() string {
	switch t {
	case TopicAI:
		return "AI Solutions"
	case TopicWeb:
		return "Digital Development"
	case TopicContent:
		return "Content & Marketing"
	case TopicPricing:
		return "Pricing Inquiry"
	default:
		return domain.DefaultService
	}
}

// Session holds one visitor's conversation state. All mutation happens
// under mu; the per-session model is strictly sequential, concurrent
// requests for the same session serialize on the lock.
type Session struct {
	UserID    string
	SessionID string

	mu         sync.Mutex
	transcript []domain.ChatMessage
	topic      Topic
	mode       Mode
	opened     bool
	submitting bool
	createdAt  time.Time
	lastActive time.Time
	greetTimer *time.Timer
}

// NewSession creates an empty idle session.
func NewSession(userID, sessionID string) *Session {
	now := time.Now()
	return &Session{
		UserID:     userID,
		SessionID:  sessionID,
		topic:      TopicWelcome,
		mode:       idleMode(),
		createdAt:  now,
		lastActive: now,
	}
}

// append adds a message to the transcript. Callers hold mu.
func (s *Session) append(msg domain.ChatMessage) {
	s.transcript = append(s.transcript, msg)
	s.lastActive = time.Now()
}

// Transcript returns a copy of the append-only transcript.
func (s *Session) Transcript() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Topic returns the current topic tag.
func (s *Session) Topic() Topic {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topic
}

// ModeKind returns the current mode tag.
func (s *Session) ModeKind() ModeKind {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode.Kind
}

// LastActive returns the time of the most recent turn.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// scheduleGreeting arms the auto-open timer. The callback fires once after
// delay unless the chat is opened or the session torn down first.
func (s *Session) scheduleGreeting(delay time.Duration, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.opened || s.greetTimer != nil {
		return
	}
	s.greetTimer = time.AfterFunc(delay, fire)
}

// cancelGreeting disarms the auto-open timer. Safe to call repeatedly and
// after the timer has fired.
func (s *Session) cancelGreeting() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.greetTimer != nil {
		s.greetTimer.Stop()
		s.greetTimer = nil
	}
}
