package domain

import "time"

// Defaults applied to a fresh appointment draft.
const (
	DefaultService  = "General Consultation"
	DefaultTimezone = "America/New_York"
)

// ConsultationLength is the fixed duration of the bookable unit.
const ConsultationLength = 15 * time.Minute

// AppointmentDraft accumulates the booking wizard's answers. Fields are
// populated strictly in order name, email, date, time; the draft is only
// handed to the calendar gateway after an explicit confirmation.
type AppointmentDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Date     string `json:"date"` // display label, e.g. "Tuesday, Jun 3"
	Time     string `json:"time"` // display label, e.g. "2:00 PM"
	Service  string `json:"service"`
	Timezone string `json:"timezone"`
}

// NewAppointmentDraft returns an empty draft with the default service
// and timezone set.
func NewAppointmentDraft() AppointmentDraft {
	return AppointmentDraft{
		Service:  DefaultService,
		Timezone: DefaultTimezone,
	}
}

// Reset returns the draft to its initial state. Used on commit,
// cancellation, and widget teardown.
func (d *AppointmentDraft) Reset() {
	*d = NewAppointmentDraft()
}

// Appointment is a persisted, committed booking.
type Appointment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Service   string    `json:"service"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}
