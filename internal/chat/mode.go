package chat

import (
	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// ModeKind enumerates the mutually exclusive conversation modes.
type ModeKind int

const (
	// ModeIdle means input is routed to the dialogue engine.
	ModeIdle ModeKind = iota
	// ModeLeadCapture means input fills the lead record, one field per turn.
	ModeLeadCapture
	// ModeBooking means input drives the appointment wizard.
	ModeBooking
)

// Step is the booking wizard's position. Steps advance strictly forward,
// except the confirm-step "change" rollback to StepDate.
type Step int

const (
	StepName Step = iota
	StepEmail
	StepDate
	StepTime
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepName:
		return "name"
	case StepEmail:
		return "email"
	case StepDate:
		return "date"
	case StepTime:
		return "time"
	case StepConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// BookingState is the payload of ModeBooking.
type BookingState struct {
	Step  Step
	Draft domain.AppointmentDraft
}

// Mode is a tagged union over the three conversation modes. Exactly one
// payload pointer is non-nil, matching Kind; the zero value is idle.
// Sessions only change mode through the transition helpers, which keeps
// the "at most one active sub-flow" invariant structural.
type Mode struct {
	Kind    ModeKind
	Lead    *domain.LeadRecord
	Booking *BookingState
}

// Idle reports whether no sub-flow is active.
func (m Mode) Idle() bool { return m.Kind == ModeIdle }

func idleMode() Mode {
	return Mode{Kind: ModeIdle}
}

func leadCaptureMode(service string) Mode {
	return Mode{
		Kind: ModeLeadCapture,
		Lead: &domain.LeadRecord{Service: service},
	}
}

func bookingMode() Mode {
	draft := domain.NewAppointmentDraft()
	return Mode{
		Kind:    ModeBooking,
		Booking: &BookingState{Step: StepName, Draft: draft},
	}
}
