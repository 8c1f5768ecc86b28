package chat

import (
	"context"
	"log/slog"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/chatlog"
	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// Booker commits a confirmed appointment draft through the calendar
// gateway. Implementations convert every failure into a user-facing
// result; nothing propagates past this boundary.
type Booker interface {
	Submit(ctx context.Context, draft domain.AppointmentDraft) domain.BookingResult
}

// Assistant answers free-form questions. Optional.
type Assistant interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Hooks are the widget-to-host completion callbacks. Both are
// fire-and-forget: they run on their own goroutine and their absence or
// failure never affects conversation flow.
type Hooks struct {
	OnLeadCaptured      func(domain.LeadRecord)
	OnAppointmentBooked func(domain.AppointmentDraft)
}

// assistantTimeout bounds the free-form question round-trip so a slow
// RAG backend cannot hang a turn.
const assistantTimeout = 15 * time.Second

// Service orchestrates conversations: it routes each turn to the active
// sub-flow or the dialogue engine, appends transcript messages, invokes
// the calendar gateway on commit, and fires host callbacks.
type Service struct {
	sessions  *SessionManager
	engine    *Engine
	booker    Booker
	assistant Assistant
	hooks     Hooks
	log       chatlog.Logger

	autoOpenDelay time.Duration
	now           func() time.Time
}

// ServiceConfig wires a Service's collaborators. Booker, Assistant, and
// Log may be nil; Hooks fields may be nil.
type ServiceConfig struct {
	Booker        Booker
	Assistant     Assistant
	Hooks         Hooks
	Log           chatlog.Logger
	AutoOpenDelay time.Duration
}

// NewService creates the conversation service.
func NewService(sessions *SessionManager, cfg ServiceConfig) *Service {
	log := cfg.Log
	if log == nil {
		log = chatlog.Noop{}
	}
	return &Service{
		sessions:      sessions,
		engine:        NewEngine(),
		booker:        cfg.Booker,
		assistant:     cfg.Assistant,
		hooks:         cfg.Hooks,
		log:           log,
		autoOpenDelay: cfg.AutoOpenDelay,
		now:           time.Now,
	}
}

// Sessions exposes the session manager for transport handlers.
func (s *Service) Sessions() *SessionManager { return s.sessions }

// Open marks a session's chat as opened and seeds the welcome message on
// first open. Returns messages appended by this call.
func (s *Service) Open(userID, sessionID string) []domain.ChatMessage {
	sess := s.sessions.GetOrCreate(userID, sessionID)
	sess.cancelGreeting()

	sess.mu.Lock()
	defer sess.mu.Unlock()
	start := len(sess.transcript)
	s.openLocked(sess)
	return s.collectNew(sess, start)
}

// ScheduleGreeting arms the fixed-delay auto-open timer for a session.
// When it fires, the welcome message is appended and notify is invoked
// with the new messages. Opening the chat or tearing the session down
// first cancels it.
func (s *Service) ScheduleGreeting(userID, sessionID string, notify func([]domain.ChatMessage)) {
	sess := s.sessions.GetOrCreate(userID, sessionID)
	sess.scheduleGreeting(s.autoOpenDelay, func() {
		msgs := s.Open(userID, sessionID)
		if len(msgs) > 0 && notify != nil {
			notify(msgs)
		}
	})
}

// Reset discards a session along with any in-progress draft or lead.
func (s *Service) Reset(userID, sessionID string) {
	s.sessions.Remove(userID, sessionID)
}

// Transcript returns the session transcript, or nil if no session exists.
func (s *Service) Transcript(userID, sessionID string) []domain.ChatMessage {
	sess := s.sessions.Get(userID, sessionID)
	if sess == nil {
		return nil
	}
	return sess.Transcript()
}

// HandleInput processes one user turn (free text or quick-reply label)
// and returns the messages appended by it, the user's own echo included.
func (s *Service) HandleInput(ctx context.Context, userID, sessionID, input string) []domain.ChatMessage {
	sess := s.sessions.GetOrCreate(userID, sessionID)
	sess.cancelGreeting()

	sess.mu.Lock()
	start := len(sess.transcript)
	s.openLocked(sess)

	sess.append(domain.NewMessage(domain.AuthorUser, input))
	s.logTurn(sess, "outbound", "user_message", input)

	if sess.submitting {
		// A commit is in flight; refuse a second one for this session.
		sess.append(domain.NewMessage(domain.AuthorBot,
			"One moment, I'm finishing up your booking. I'll be right with you."))
		msgs := s.collectNew(sess, start)
		sess.mu.Unlock()
		return msgs
	}

	switch sess.mode.Kind {
	case ModeBooking:
		s.handleBookingLocked(ctx, sess, input)
	case ModeLeadCapture:
		s.handleLeadLocked(sess, input)
	default:
		s.handleEngineLocked(ctx, sess, input)
	}

	msgs := s.collectNew(sess, start)
	sess.mu.Unlock()
	return msgs
}

// openLocked seeds the welcome message on first open. Callers hold mu.
func (s *Service) openLocked(sess *Session) {
	if sess.opened {
		return
	}
	sess.opened = true
	if len(sess.transcript) == 0 {
		sess.topic = TopicWelcome
		s.appendBotLocked(sess, welcomeText, topLevelQuickReplies)
	}
}

// handleEngineLocked classifies idle-mode input through the rule cascade.
func (s *Service) handleEngineLocked(ctx context.Context, sess *Session, input string) {
	r := s.engine.Classify(input)

	switch r.act {
	case actionStartBooking:
		sess.mode = bookingMode()
		s.appendBotLocked(sess, bookingIntroText, nil)
		return
	case actionStartLead:
		sess.mode = leadCaptureMode(sess.topic.ServiceInterest())
		s.appendBotLocked(sess, leadIntroText, nil)
		return
	case actionAskAssistant:
		s.askAssistantLocked(ctx, sess, input)
		return
	}

	if r.topic != "" {
		sess.topic = r.topic
	}
	s.appendBotLocked(sess, r.text, r.quickReplies)
}

// askAssistantLocked consults the RAG assistant for a free-form question.
// Any failure, including the assistant being unconfigured, degrades to
// the default fallback response. The session lock is released for the
// duration of the round-trip.
func (s *Service) askAssistantLocked(ctx context.Context, sess *Session, question string) {
	if s.assistant == nil {
		r := fallbackReply()
		s.appendBotLocked(sess, r.text, r.quickReplies)
		return
	}

	sess.mu.Unlock()
	askCtx, cancel := context.WithTimeout(ctx, assistantTimeout)
	answer, err := s.assistant.Ask(askCtx, question)
	cancel()
	sess.mu.Lock()

	if err != nil || answer == "" {
		slog.Warn("Assistant lookup failed, falling back to menu",
			"user_id", sess.UserID, "session_id", sess.SessionID, "error", err)
		r := fallbackReply()
		s.appendBotLocked(sess, r.text, r.quickReplies)
		return
	}
	s.appendBotLocked(sess, answer, topLevelQuickReplies)
}

// appendBotLocked appends the single bot message for this turn. Callers
// hold mu.
func (s *Service) appendBotLocked(sess *Session, text string, quickReplies []string) {
	sess.append(domain.NewMessage(domain.AuthorBot, text, quickReplies...))
	s.logTurn(sess, "inbound", "bot_message", text)
}

func (s *Service) collectNew(sess *Session, start int) []domain.ChatMessage {
	out := make([]domain.ChatMessage, len(sess.transcript)-start)
	copy(out, sess.transcript[start:])
	return out
}

func (s *Service) logTurn(sess *Session, direction, eventType, content string) {
	s.log.Log(chatlog.Event{
		UserID:     sess.UserID,
		SessionID:  sess.SessionID,
		Channel:    "chat",
		Direction:  direction,
		EventType:  eventType,
		ContentRaw: content,
	})
}
