package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// Gateway abstracts the calendar provider. All methods are safe for
// concurrent use. Boolean answers are conservative: a transport failure
// during CheckAvailability reads as "not available" rather than risking
// a double booking on bad information.
type Gateway interface {
	// IsAuthorized reports whether the gateway currently holds a usable
	// credential, without prompting for one.
	IsAuthorized(ctx context.Context) bool

	// Authorize obtains or refreshes the gateway's credential.
	Authorize(ctx context.Context) error

	// CheckAvailability reports whether the consultation window starting
	// at start is free of conflicting events.
	CheckAvailability(ctx context.Context, start time.Time) (bool, error)

	// CreateEvent creates the consultation event for the draft at start
	// and invites the client.
	CreateEvent(ctx context.Context, draft domain.AppointmentDraft, start time.Time) error
}

// Booker drives the commit sequence against a Gateway: ensure
// authorization, check the slot, create the event. Each failure class
// maps to a distinct user-facing result so the wizard can route the
// visitor appropriately.
type Booker struct {
	gw  Gateway
	now func() time.Time
}

// NewBooker wires a Booker over a gateway.
func NewBooker(gw Gateway) *Booker {
	return &Booker{gw: gw, now: time.Now}
}

// Submit commits a confirmed appointment draft. Never returns an error;
// every failure is folded into the result's status and message.
func (b *Booker) Submit(ctx context.Context, draft domain.AppointmentDraft) domain.BookingResult {
	start := ParseSlot(draft, b.now())
	log := slog.With("email", draft.Email, "start", start)

	if !b.gw.IsAuthorized(ctx) {
		if err := b.gw.Authorize(ctx); err != nil {
			log.Warn("Calendar authorization failed", "error", err)
			return domain.BookingResult{
				Status:  domain.BookingAuthRequired,
				Message: "I couldn't connect to our calendar right now. Please try confirming again in a moment.",
			}
		}
	}

	free, err := b.gw.CheckAvailability(ctx, start)
	if err != nil {
		log.Warn("Availability check failed", "error", err)
		free = false
	}
	if !free {
		return domain.BookingResult{
			Status:  domain.BookingSlotTaken,
			Message: "It looks like that time slot just got taken.",
		}
	}

	if err := b.gw.CreateEvent(ctx, draft, start); err != nil {
		log.Error("Event creation failed", "error", err)
		return domain.BookingResult{
			Status:  domain.BookingFailed,
			Message: "Sorry, something went wrong while booking your consultation. Please try again, or reach us at hello@slashbyte.org.",
		}
	}

	log.Info("Consultation booked")
	return domain.BookingResult{Status: domain.BookingConfirmed}
}
