package chat

import (
	"fmt"
	"strings"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// handleLeadLocked advances the lead-capture flow by one turn: name
// first, then email. Completion hands the record to the host callback
// and returns the session to idle. Callers hold sess.mu.
func (s *Service) handleLeadLocked(sess *Session, input string) {
	lead := sess.mode.Lead
	in := strings.TrimSpace(input)

	if lead.Name == "" {
		if in == "" {
			s.appendBotLocked(sess, "I didn't catch that. What's your name?", nil)
			return
		}
		lead.Name = in
		s.appendBotLocked(sess,
			fmt.Sprintf("Thanks, %s! And what's the best email to send the details to?", in), nil)
		return
	}

	if !domain.ValidEmail(in) {
		s.appendBotLocked(sess,
			"That doesn't look like a valid email address. Could you try again?", nil)
		return
	}
	lead.Email = in

	captured := *lead
	sess.mode = idleMode()
	s.appendBotLocked(sess,
		fmt.Sprintf("Perfect! I'll send the details about %s to %s shortly. Anything else I can help with?",
			captured.Service, captured.Email),
		afterLeadQuickReplies)
	s.logEvent(sess, "lead_captured", map[string]any{
		"name": captured.Name, "email": captured.Email, "service": captured.Service,
	})
	if s.hooks.OnLeadCaptured != nil {
		go s.hooks.OnLeadCaptured(captured)
	}
}
