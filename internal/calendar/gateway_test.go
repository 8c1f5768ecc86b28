package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// fakeGateway scripts each Gateway call and records what ran.
type fakeGateway struct {
	authorized   bool
	authorizeErr error
	available    bool
	availErr     error
	createErr    error

	authorizeCalls int
	availCalls     int
	createCalls    int
	createdStart   time.Time
}

func (f *fakeGateway) IsAuthorized(context.Context) bool { return f.authorized }

func (f *fakeGateway) Authorize(context.Context) error {
	f.authorizeCalls++
	return f.authorizeErr
}

func (f *fakeGateway) CheckAvailability(_ context.Context, _ time.Time) (bool, error) {
	f.availCalls++
	return f.available, f.availErr
}

func (f *fakeGateway) CreateEvent(_ context.Context, _ domain.AppointmentDraft, start time.Time) error {
	f.createCalls++
	f.createdStart = start
	return f.createErr
}

func testDraft() domain.AppointmentDraft {
	d := domain.NewAppointmentDraft()
	d.Name = "Jane Smith"
	d.Email = "jane@example.com"
	d.Date = "Tuesday, Jun 2"
	d.Time = "2:00 PM"
	d.Timezone = "UTC"
	return d
}

func newTestBooker(gw Gateway) *Booker {
	b := NewBooker(gw)
	b.now = func() time.Time {
		return time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC)
	}
	return b
}

func TestSubmitHappyPath(t *testing.T) {
	gw := &fakeGateway{authorized: true, available: true}
	b := newTestBooker(gw)

	res := b.Submit(context.Background(), testDraft())

	if !res.Success() {
		t.Fatalf("Submit status = %v, want confirmed", res.Status)
	}
	if gw.authorizeCalls != 0 {
		t.Errorf("Authorize called %d times while already authorized", gw.authorizeCalls)
	}
	if gw.availCalls != 1 || gw.createCalls != 1 {
		t.Errorf("Calls: avail=%d create=%d, want 1 each", gw.availCalls, gw.createCalls)
	}

	want := time.Date(2026, time.June, 2, 14, 0, 0, 0, time.UTC)
	if !gw.createdStart.Equal(want) {
		t.Errorf("Event start = %v, want %v", gw.createdStart, want)
	}
}

func TestSubmitAuthorizesWhenNeeded(t *testing.T) {
	gw := &fakeGateway{authorized: false, available: true}
	b := newTestBooker(gw)

	res := b.Submit(context.Background(), testDraft())

	if !res.Success() {
		t.Fatalf("Submit status = %v, want confirmed", res.Status)
	}
	if gw.authorizeCalls != 1 {
		t.Errorf("Authorize called %d times, want 1", gw.authorizeCalls)
	}
}

func TestSubmitAuthFailure(t *testing.T) {
	gw := &fakeGateway{authorized: false, authorizeErr: errors.New("revoked")}
	b := newTestBooker(gw)

	res := b.Submit(context.Background(), testDraft())

	if res.Status != domain.BookingAuthRequired {
		t.Fatalf("Submit status = %v, want auth required", res.Status)
	}
	if gw.availCalls != 0 || gw.createCalls != 0 {
		t.Error("Gateway calls made after authorization failure")
	}
	if res.Message == "" {
		t.Error("Auth failure result carries no message")
	}
}

func TestSubmitSlotTaken(t *testing.T) {
	gw := &fakeGateway{authorized: true, available: false}
	b := newTestBooker(gw)

	res := b.Submit(context.Background(), testDraft())

	if res.Status != domain.BookingSlotTaken {
		t.Fatalf("Submit status = %v, want slot taken", res.Status)
	}
	if gw.createCalls != 0 {
		t.Error("CreateEvent called for a taken slot")
	}
}

func TestSubmitAvailabilityErrorReadsAsTaken(t *testing.T) {
	// A failed availability check must not risk a double booking.
	gw := &fakeGateway{authorized: true, available: true, availErr: errors.New("timeout")}
	b := newTestBooker(gw)

	res := b.Submit(context.Background(), testDraft())

	if res.Status != domain.BookingSlotTaken {
		t.Fatalf("Submit status = %v, want slot taken", res.Status)
	}
	if gw.createCalls != 0 {
		t.Error("CreateEvent called despite availability error")
	}
}

func TestSubmitCreateFailure(t *testing.T) {
	gw := &fakeGateway{authorized: true, available: true, createErr: errors.New("api 500")}
	b := newTestBooker(gw)

	res := b.Submit(context.Background(), testDraft())

	if res.Status != domain.BookingFailed {
		t.Fatalf("Submit status = %v, want failed", res.Status)
	}
	if res.Message == "" {
		t.Error("Create failure result carries no message")
	}
}
