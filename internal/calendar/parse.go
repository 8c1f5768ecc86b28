// Package calendar books consultation slots through the Google Calendar
// API and converts the wizard's display labels into concrete times.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// dateLabelLayout matches the wizard's date quick replies, e.g.
// "Tuesday, Jun 3". The label carries no year; ParseSlot supplies one.
const dateLabelLayout = "Monday, Jan 2"

// timeLabelLayout matches the wizard's time quick replies, e.g. "2:00 PM".
const timeLabelLayout = "3:04 PM"

// ParseSlot converts the draft's display labels into the event start
// time in the draft's timezone. The date label is assumed to be the
// current year; a label that would land in the past rolls to next year
// (a late-December booking for early January). An unparseable date falls
// back to tomorrow at the requested time, an unparseable time to 10 AM,
// so a mangled label still produces a plausible slot instead of an
// error dead-end this late in the flow.
func ParseSlot(draft domain.AppointmentDraft, now time.Time) time.Time {
	loc, err := time.LoadLocation(draft.Timezone)
	if err != nil {
		loc = time.UTC
	}
	now = now.In(loc)

	hour, minute := parseTimeLabel(draft.Time)

	month, day, ok := parseDateLabel(draft.Date)
	if !ok {
		tomorrow := now.AddDate(0, 0, 1)
		return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, minute, 0, 0, loc)
	}

	start := time.Date(now.Year(), month, day, hour, minute, 0, 0, loc)
	if start.Before(now) {
		start = time.Date(now.Year()+1, month, day, hour, minute, 0, 0, loc)
	}
	return start
}

func parseDateLabel(label string) (time.Month, int, bool) {
	t, err := time.Parse(dateLabelLayout, strings.TrimSpace(label))
	if err != nil {
		return 0, 0, false
	}
	return t.Month(), t.Day(), true
}

// parseTimeLabel converts a 12-hour label to clock hour and minute.
// "12:00 PM" is noon and "12:00 AM" is midnight.
func parseTimeLabel(label string) (hour, minute int) {
	t, err := time.Parse(timeLabelLayout, strings.TrimSpace(label))
	if err != nil {
		return 10, 0
	}
	return t.Hour(), t.Minute()
}

// slotWindow returns the RFC 3339 start and end for a consultation
// beginning at start.
func slotWindow(start time.Time) (string, string) {
	end := start.Add(domain.ConsultationLength)
	return start.Format(time.RFC3339), end.Format(time.RFC3339)
}

// eventSummary is the calendar event title for a draft.
func eventSummary(d domain.AppointmentDraft) string {
	return fmt.Sprintf("SlashByte Free Consultation - %s", d.Name)
}

// eventDescription is the calendar event body for a draft.
func eventDescription(d domain.AppointmentDraft) string {
	return fmt.Sprintf(`Free 15-minute consultation booked through the SlashByte website.

Client: %s
Email: %s
Service interest: %s

Agenda: discuss project goals, answer questions, and outline next steps.`,
		d.Name, d.Email, d.Service)
}
