package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

func TestOpenSeedsWelcomeOnce(t *testing.T) {
	svc := newTestService(nil)

	msgs := svc.Open("u1", "s1")
	if len(msgs) != 1 {
		t.Fatalf("Expected 1 welcome message, got %d", len(msgs))
	}
	if msgs[0].Author != domain.AuthorBot {
		t.Errorf("Welcome author = %q", msgs[0].Author)
	}
	if len(msgs[0].QuickReplies) != 4 {
		t.Errorf("Expected 4 top-level quick replies, got %v", msgs[0].QuickReplies)
	}

	// Re-opening appends nothing.
	if again := svc.Open("u1", "s1"); len(again) != 0 {
		t.Errorf("Second open appended %d messages", len(again))
	}
}

func TestHandleInputEchoesUserMessage(t *testing.T) {
	svc := newTestService(nil)

	msgs := svc.HandleInput(context.Background(), "u1", "s1", "Get Pricing Info")

	var sawUser bool
	for _, m := range msgs {
		if m.Author == domain.AuthorUser && m.Text == "Get Pricing Info" {
			sawUser = true
		}
	}
	if !sawUser {
		t.Error("User echo missing from returned messages")
	}
}

func TestTopicFollowsConversation(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	svc.HandleInput(ctx, "u1", "s1", "AI Solutions")
	sess := svc.Sessions().Get("u1", "s1")
	if sess.Topic() != TopicAI {
		t.Errorf("Topic = %q, want %q", sess.Topic(), TopicAI)
	}

	svc.HandleInput(ctx, "u1", "s1", "Back to Main Menu")
	if sess.Topic() != TopicWelcome {
		t.Errorf("Topic after back = %q, want %q", sess.Topic(), TopicWelcome)
	}
}

func TestLeadCaptureFlow(t *testing.T) {
	captured := make(chan domain.LeadRecord, 1)
	svc := NewService(NewSessionManager(), ServiceConfig{
		Hooks: Hooks{
			OnLeadCaptured: func(l domain.LeadRecord) { captured <- l },
		},
	})
	ctx := context.Background()

	// Browsing AI content first seeds the recorded service interest.
	svc.HandleInput(ctx, "u1", "s1", "AI Solutions")
	svc.HandleInput(ctx, "u1", "s1", "Just Send Info")

	sess := svc.Sessions().Get("u1", "s1")
	if sess.ModeKind() != ModeLeadCapture {
		t.Fatalf("Expected lead capture mode, got %v", sess.ModeKind())
	}

	svc.HandleInput(ctx, "u1", "s1", "Sam Lee")
	msgs := svc.HandleInput(ctx, "u1", "s1", "bad address")
	bot := lastBotMessage(t, msgs)
	if !strings.Contains(bot.Text, "valid email") {
		t.Errorf("Expected email re-prompt, got %q", bot.Text)
	}

	msgs = svc.HandleInput(ctx, "u1", "s1", "sam@example.com")
	bot = lastBotMessage(t, msgs)
	if !strings.Contains(bot.Text, "sam@example.com") {
		t.Errorf("Expected completion message, got %q", bot.Text)
	}
	if sess.ModeKind() != ModeIdle {
		t.Errorf("Expected idle after capture, got %v", sess.ModeKind())
	}

	select {
	case lead := <-captured:
		if lead.Name != "Sam Lee" || lead.Email != "sam@example.com" {
			t.Errorf("Captured lead = %+v", lead)
		}
		if lead.Service != "AI Solutions" {
			t.Errorf("Service interest = %q, want AI Solutions", lead.Service)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("OnLeadCaptured was not invoked")
	}
}

// fakeAssistant returns a scripted answer or error.
type fakeAssistant struct {
	answer string
	err    error
}

func (f *fakeAssistant) Ask(context.Context, string) (string, error) {
	return f.answer, f.err
}

func TestQuestionGoesToAssistant(t *testing.T) {
	svc := NewService(NewSessionManager(), ServiceConfig{
		Assistant: &fakeAssistant{answer: "We have shipped several healthcare projects."},
	})

	msgs := svc.HandleInput(context.Background(), "u1", "s1", "do you work with healthcare companies?")
	bot := lastBotMessage(t, msgs)
	if bot.Text != "We have shipped several healthcare projects." {
		t.Errorf("Expected assistant answer, got %q", bot.Text)
	}
}

func TestAssistantFailureFallsBack(t *testing.T) {
	svc := NewService(NewSessionManager(), ServiceConfig{
		Assistant: &fakeAssistant{err: errors.New("backend down")},
	})

	msgs := svc.HandleInput(context.Background(), "u1", "s1", "do you work with healthcare companies?")
	bot := lastBotMessage(t, msgs)
	if bot.Text != fallbackText {
		t.Errorf("Expected fallback text, got %q", bot.Text)
	}
}

func TestResetDiscardsDraft(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	svc.HandleInput(ctx, "u1", "s1", "Book Free Consultation")
	svc.HandleInput(ctx, "u1", "s1", "Jane")
	svc.Reset("u1", "s1")

	if sess := svc.Sessions().Get("u1", "s1"); sess != nil {
		t.Fatal("Session survived reset")
	}

	// A fresh turn starts a brand-new conversation.
	msgs := svc.HandleInput(ctx, "u1", "s1", "hello there")
	if msgs[0].Author != domain.AuthorBot || msgs[0].Text != welcomeText {
		t.Errorf("Expected welcome to lead the new session, got %+v", msgs[0])
	}
}

func TestScheduledGreetingFires(t *testing.T) {
	svc := NewService(NewSessionManager(), ServiceConfig{AutoOpenDelay: 10 * time.Millisecond})

	got := make(chan []domain.ChatMessage, 1)
	svc.ScheduleGreeting("u1", "s1", func(msgs []domain.ChatMessage) { got <- msgs })

	select {
	case msgs := <-got:
		if len(msgs) != 1 || msgs[0].Text != welcomeText {
			t.Errorf("Greeting messages = %+v", msgs)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Greeting never fired")
	}
}

func TestScheduledGreetingCancelledByInteraction(t *testing.T) {
	svc := NewService(NewSessionManager(), ServiceConfig{AutoOpenDelay: 50 * time.Millisecond})

	fired := make(chan struct{}, 1)
	svc.ScheduleGreeting("u1", "s1", func([]domain.ChatMessage) { fired <- struct{}{} })

	// Opening before the delay elapses disarms the timer.
	svc.Open("u1", "s1")

	select {
	case <-fired:
		t.Fatal("Greeting fired after the chat was opened")
	case <-time.After(150 * time.Millisecond):
	}
}
