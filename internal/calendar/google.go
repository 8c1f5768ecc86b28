package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/richabhowmik03/slashbyte-rjs/internal/config"
	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// GoogleGateway implements Gateway against the Google Calendar API using
// an offline refresh token. The API client is built lazily on first use
// and memoized; concurrent callers share one initialization.
type GoogleGateway struct {
	cfg config.CalendarConfig

	initOnce sync.Once
	svc      *gcal.Service
	initErr  error
}

// NewGoogleGateway creates a gateway for the configured calendar.
func NewGoogleGateway(cfg config.CalendarConfig) *GoogleGateway {
	return &GoogleGateway{cfg: cfg}
}

// service returns the memoized API client, building it on first call.
func (g *GoogleGateway) service(ctx context.Context) (*gcal.Service, error) {
	g.initOnce.Do(func() {
		oc := &oauth2.Config{
			ClientID:     g.cfg.ClientID,
			ClientSecret: g.cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{gcal.CalendarEventsScope},
		}
		ts := oc.TokenSource(context.Background(), &oauth2.Token{
			RefreshToken: g.cfg.RefreshToken,
		})
		svc, err := gcal.NewService(ctx, option.WithTokenSource(ts))
		if err != nil {
			g.initErr = fmt.Errorf("init calendar client: %w", err)
			return
		}
		g.svc = svc
	})
	return g.svc, g.initErr
}

// IsAuthorized reports whether the gateway holds a credential that can
// currently mint access tokens.
func (g *GoogleGateway) IsAuthorized(ctx context.Context) bool {
	if !g.cfg.Enabled() {
		return false
	}
	if _, err := g.service(ctx); err != nil {
		return false
	}
	return true
}

// Authorize verifies the refresh token by forcing a token exchange.
func (g *GoogleGateway) Authorize(ctx context.Context) error {
	if !g.cfg.Enabled() {
		return fmt.Errorf("calendar credentials not configured")
	}
	oc := &oauth2.Config{
		ClientID:     g.cfg.ClientID,
		ClientSecret: g.cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarEventsScope},
	}
	tok, err := oc.TokenSource(ctx, &oauth2.Token{RefreshToken: g.cfg.RefreshToken}).Token()
	if err != nil {
		return fmt.Errorf("exchange refresh token: %w", err)
	}
	if !tok.Valid() {
		return fmt.Errorf("refresh token yielded an expired access token")
	}
	return nil
}

// CheckAvailability queries free/busy for the consultation window.
func (g *GoogleGateway) CheckAvailability(ctx context.Context, start time.Time) (bool, error) {
	svc, err := g.service(ctx)
	if err != nil {
		return false, err
	}
	startStr, endStr := slotWindow(start)
	resp, err := svc.Freebusy.Query(&gcal.FreeBusyRequest{
		TimeMin: startStr,
		TimeMax: endStr,
		Items:   []*gcal.FreeBusyRequestItem{{Id: g.cfg.CalendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return false, fmt.Errorf("freebusy query: %w", err)
	}
	cal, ok := resp.Calendars[g.cfg.CalendarID]
	if !ok {
		return false, fmt.Errorf("calendar %q missing from freebusy response", g.cfg.CalendarID)
	}
	return len(cal.Busy) == 0, nil
}

// CreateEvent inserts the consultation event and emails invitations to
// both the client and the organizer inbox.
func (g *GoogleGateway) CreateEvent(ctx context.Context, draft domain.AppointmentDraft, start time.Time) error {
	svc, err := g.service(ctx)
	if err != nil {
		return err
	}
	startStr, endStr := slotWindow(start)

	event := &gcal.Event{
		Summary:     eventSummary(draft),
		Description: eventDescription(draft),
		Start: &gcal.EventDateTime{
			DateTime: startStr,
			TimeZone: draft.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: endStr,
			TimeZone: draft.Timezone,
		},
		Attendees: []*gcal.EventAttendee{
			{Email: draft.Email, DisplayName: draft.Name},
			{Email: g.cfg.OrganizerEmail, DisplayName: g.cfg.OrganizerName, Organizer: true},
		},
		Reminders: &gcal.EventReminders{
			UseDefault:      false,
			ForceSendFields: []string{"UseDefault"},
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "email", Minutes: 60},
				{Method: "popup", Minutes: 15},
			},
		},
	}

	_, err = svc.Events.Insert(g.cfg.CalendarID, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}
