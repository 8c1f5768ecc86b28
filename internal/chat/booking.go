package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/richabhowmik03/slashbyte-rjs/internal/chatlog"
	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

var confirmQuickReplies = []string{"Yes, Book It!", "Change Date/Time", "Cancel"}

// handleBookingLocked advances the appointment wizard by one step.
// Callers hold sess.mu; the commit path temporarily releases it for the
// calendar round-trip.
func (s *Service) handleBookingLocked(ctx context.Context, sess *Session, input string) {
	st := sess.mode.Booking
	in := strings.TrimSpace(input)

	switch st.Step {
	case StepName:
		if in == "" {
			s.appendBotLocked(sess, "I didn't catch that. What's your name?", nil)
			return
		}
		st.Draft.Name = in
		st.Step = StepEmail
		s.appendBotLocked(sess,
			fmt.Sprintf("Nice to meet you, %s! What's your email address?", in), nil)

	case StepEmail:
		if !domain.ValidEmail(in) {
			s.appendBotLocked(sess,
				"That doesn't look like a valid email address. Could you try again?", nil)
			return
		}
		st.Draft.Email = in
		st.Step = StepDate
		s.appendBotLocked(sess,
			"Got it! Which day works best for your consultation?",
			DateOptions(s.now()))

	case StepDate:
		if in == "" {
			s.appendBotLocked(sess,
				"Please pick a day for your consultation.", DateOptions(s.now()))
			return
		}
		st.Draft.Date = in
		st.Step = StepTime
		s.appendBotLocked(sess,
			fmt.Sprintf("%s works! What time suits you? (All times EST)", in),
			timeSlotLabels())

	case StepTime:
		if in == "" {
			s.appendBotLocked(sess, "Please pick a time slot.", timeSlotLabels())
			return
		}
		st.Draft.Time = in
		st.Step = StepConfirm
		s.appendBotLocked(sess, bookingSummary(st.Draft), confirmQuickReplies)

	case StepConfirm:
		s.handleConfirmLocked(ctx, sess, strings.ToLower(in))
	}
}

// handleConfirmLocked resolves the confirm step: commit, roll back to the
// date step keeping name and email, or cancel entirely.
func (s *Service) handleConfirmLocked(ctx context.Context, sess *Session, in string) {
	st := sess.mode.Booking

	switch {
	case strings.Contains(in, "yes"):
		s.commitBookingLocked(ctx, sess)

	case strings.Contains(in, "change"):
		st.Draft.Date = ""
		st.Draft.Time = ""
		st.Step = StepDate
		s.appendBotLocked(sess,
			"No problem! Which day works best for your consultation?",
			DateOptions(s.now()))

	default:
		sess.mode = idleMode()
		s.appendBotLocked(sess,
			"No worries, your booking has been cancelled. Is there anything else I can help you with?",
			cancelQuickReplies)
		s.logEvent(sess, "booking_cancelled", nil)
	}
}

// commitBookingLocked hands the confirmed draft to the calendar gateway.
// The session lock is released for the network call; submitting guards
// against a second commit racing in through another transport.
func (s *Service) commitBookingLocked(ctx context.Context, sess *Session) {
	draft := sess.mode.Booking.Draft
	sess.submitting = true

	var res domain.BookingResult
	if s.booker == nil {
		// No gateway configured: acknowledge the booking locally so the
		// conversation still completes in demos and tests.
		res = domain.BookingResult{Status: domain.BookingConfirmed}
	} else {
		sess.mu.Unlock()
		res = s.booker.Submit(ctx, draft)
		sess.mu.Lock()
	}
	sess.submitting = false

	switch res.Status {
	case domain.BookingConfirmed:
		sess.mode = idleMode()
		msg := res.Message
		if msg == "" {
			msg = confirmedMessage(draft)
		}
		s.appendBotLocked(sess, msg, afterBookingQuickReplies)
		s.logEvent(sess, "booking_committed", map[string]any{
			"name": draft.Name, "email": draft.Email,
			"date": draft.Date, "time": draft.Time,
		})
		if s.hooks.OnAppointmentBooked != nil {
			go s.hooks.OnAppointmentBooked(draft)
		}

	case domain.BookingSlotTaken:
		st := sess.mode.Booking
		st.Draft.Date = ""
		st.Draft.Time = ""
		st.Step = StepDate
		msg := res.Message
		if msg == "" {
			msg = "That time slot is already taken. Let's find another one."
		}
		s.appendBotLocked(sess,
			msg+" Which day works best?", DateOptions(s.now()))

	case domain.BookingAuthRequired:
		// Stay on the confirm step so the visitor can retry after the
		// operator re-authorizes the calendar.
		msg := res.Message
		if msg == "" {
			msg = "I couldn't reach the calendar just now. Please try confirming again in a moment."
		}
		s.appendBotLocked(sess, msg, confirmQuickReplies)
		slog.Warn("Booking blocked on calendar authorization",
			"user_id", sess.UserID, "session_id", sess.SessionID)

	default:
		sess.mode = idleMode()
		msg := res.Message
		if msg == "" {
			msg = "Sorry, something went wrong while booking your consultation. Please try again, or reach us at hello@slashbyte.org."
		}
		s.appendBotLocked(sess, msg, cancelQuickReplies)
		s.logEvent(sess, "booking_failed", nil)
	}
}

func bookingSummary(d domain.AppointmentDraft) string {
	return fmt.Sprintf(`Perfect! Here's your booking summary:

Name: %s
Email: %s
Date: %s
Time: %s (EST)
Duration: 15 minutes

Shall I confirm this booking?`, d.Name, d.Email, d.Date, d.Time)
}

func confirmedMessage(d domain.AppointmentDraft) string {
	return fmt.Sprintf(`You're all set, %s!

Your free consultation is booked for %s at %s (EST). A calendar invitation is on its way to %s.

Looking forward to speaking with you!`, d.Name, d.Date, d.Time, d.Email)
}

func (s *Service) logEvent(sess *Session, eventType string, meta map[string]any) {
	s.log.Log(chatlog.Event{
		UserID:    sess.UserID,
		SessionID: sess.SessionID,
		Channel:   "chat",
		Direction: "inbound",
		EventType: eventType,
		Meta:      meta,
	})
}
