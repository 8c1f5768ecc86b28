// Package chatlog provides NDJSON conversation logging with an async
// bounded queue, one file per chat session.
package chatlog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"
)

// Event is one logged conversation turn or lifecycle occurrence.
type Event struct {
	Timestamp  string         `json:"ts"`
	UserID     string         `json:"user_id"`
	SessionID  string         `json:"session_id"`
	Channel    string         `json:"channel"`    // "chat_ws" or "chat_http"
	Direction  string         `json:"direction"`  // "inbound" (bot) or "outbound" (user)
	EventType  string         `json:"event_type"` // e.g. "user_message", "bot_message", "booking_committed"
	ContentRaw string         `json:"content_raw,omitempty"`
	Content    string         `json:"content,omitempty"`
	Meta       map[string]any `json:"meta,omitempty"`
}

// Logger records conversation events. Implementations must be safe for
// concurrent use and must never block the conversation turn.
type Logger interface {
	Log(Event)
	Close() error
}

// Config controls the NDJSON logger.
type Config struct {
	Enabled       bool
	Dir           string
	GlobalEnabled bool
	GlobalPath    string
	QueueSize     int
}

// Noop is a Logger that discards everything.
type Noop struct{}

func (Noop) Log(Event)    {}
func (Noop) Close() error { return nil }

// NDJSONLogger writes one NDJSON line per event to
// <dir>/<user_id>/<session_id>.ndjson, and optionally to a single global
// stream. Writes happen on a background goroutine fed by a bounded
// queue; when the queue is full, events are dropped with a warning
// counter rather than stalling a turn.
type NDJSONLogger struct {
	cfg    Config
	logger *slog.Logger

	queue   chan Event
	done    chan struct{}
	wg      sync.WaitGroup
	dropped int64
	mu      sync.Mutex
}

// New creates a conversation logger. Returns a Noop when disabled.
func New(cfg Config, logger *slog.Logger) (Logger, error) {
	if !cfg.Enabled && !cfg.GlobalEnabled {
		return Noop{}, nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.Enabled {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("create conversation log dir: %w", err)
		}
	}
	if cfg.GlobalEnabled {
		if err := os.MkdirAll(filepath.Dir(cfg.GlobalPath), 0o755); err != nil {
			return nil, fmt.Errorf("create global conversation log dir: %w", err)
		}
	}

	l := &NDJSONLogger{
		cfg:    cfg,
		logger: logger,
		queue:  make(chan Event, cfg.QueueSize),
		done:   make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l, nil
}

// Log enqueues an event, filling in timestamp and cleaned content when
// the caller left them empty. Never blocks.
func (l *NDJSONLogger) Log(ev Event) {
	if ev.Timestamp == "" {
		ev.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	if ev.Content == "" && ev.ContentRaw != "" {
		ev.Content = CleanForReadability(ev.ContentRaw)
	}

	select {
	case l.queue <- ev:
	default:
		l.mu.Lock()
		l.dropped++
		n := l.dropped
		l.mu.Unlock()
		if n%100 == 1 {
			l.logger.Warn("conversation log queue full, dropping events", "dropped_total", n)
		}
	}
}

// Close drains the queue and stops the writer goroutine.
func (l *NDJSONLogger) Close() error {
	close(l.done)
	l.wg.Wait()
	return nil
}

func (l *NDJSONLogger) run() {
	defer l.wg.Done()
	for {
		select {
		case ev := <-l.queue:
			l.write(ev)
		case <-l.done:
			// Drain whatever is already queued before exiting.
			for {
				select {
				case ev := <-l.queue:
					l.write(ev)
				default:
					return
				}
			}
		}
	}
}

func (l *NDJSONLogger) write(ev Event) {
	line, err := json.Marshal(ev)
	if err != nil {
		l.logger.Warn("failed to marshal conversation event", "error", err)
		return
	}
	line = append(line, '\n')

	if l.cfg.Enabled {
		dir := filepath.Join(l.cfg.Dir, sanitizePathComponent(ev.UserID))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			l.logger.Warn("failed to create session log dir", "error", err)
		} else {
			path := filepath.Join(dir, sanitizePathComponent(ev.SessionID)+".ndjson")
			appendLine(l.logger, path, line)
		}
	}
	if l.cfg.GlobalEnabled {
		appendLine(l.logger, l.cfg.GlobalPath, line)
	}
}

func appendLine(logger *slog.Logger, path string, line []byte) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logger.Warn("failed to open conversation log", "path", path, "error", err)
		return
	}
	if _, err := f.Write(line); err != nil {
		logger.Warn("failed to write conversation log", "path", path, "error", err)
	}
	if err := f.Close(); err != nil {
		logger.Warn("failed to close conversation log", "path", path, "error", err)
	}
}

func sanitizePathComponent(s string) string {
	if s == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// CleanForReadability collapses whitespace runs and strips control
// characters so multi-paragraph bot messages stay greppable as one line.
func CleanForReadability(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
