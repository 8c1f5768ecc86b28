package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return repo
}

func TestSaveAndListLeads(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	older := &domain.Lead{
		ID: "lead-1", Name: "Sam Lee", Email: "sam@example.com",
		Service: "AI Solutions", CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &domain.Lead{
		ID: "lead-2", Name: "Jane Smith", Email: "jane@example.com",
		Service: "Digital Development", CreatedAt: time.Now(),
	}
	if err := repo.SaveLead(ctx, older); err != nil {
		t.Fatalf("SaveLead: %v", err)
	}
	if err := repo.SaveLead(ctx, newer); err != nil {
		t.Fatalf("SaveLead: %v", err)
	}

	leads, err := repo.ListLeads(ctx, 0)
	if err != nil {
		t.Fatalf("ListLeads: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("Expected 2 leads, got %d", len(leads))
	}
	if leads[0].ID != "lead-2" {
		t.Errorf("Expected newest first, got %q", leads[0].ID)
	}
	if leads[1].Email != "sam@example.com" || leads[1].Service != "AI Solutions" {
		t.Errorf("Lead fields lost: %+v", leads[1])
	}
}

func TestListLeadsHonorsLimit(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"a", "b", "c"} {
		lead := &domain.Lead{
			ID: id, Name: "n", Email: "e@example.com", Service: "s",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if err := repo.SaveLead(ctx, lead); err != nil {
			t.Fatalf("SaveLead: %v", err)
		}
	}

	leads, err := repo.ListLeads(ctx, 2)
	if err != nil {
		t.Fatalf("ListLeads: %v", err)
	}
	if len(leads) != 2 {
		t.Errorf("Expected 2 leads, got %d", len(leads))
	}
}

func TestSaveAndListAppointments(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	appt := &domain.Appointment{
		ID:        "appt-1",
		Name:      "Jane Smith",
		Email:     "jane@example.com",
		Date:      "Tuesday, Jun 2",
		Time:      "2:00 PM",
		Service:   domain.DefaultService,
		Timezone:  domain.DefaultTimezone,
		CreatedAt: time.Now(),
	}
	if err := repo.SaveAppointment(ctx, appt); err != nil {
		t.Fatalf("SaveAppointment: %v", err)
	}

	appts, err := repo.ListAppointments(ctx, 0)
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("Expected 1 appointment, got %d", len(appts))
	}
	got := appts[0]
	if got.Date != "Tuesday, Jun 2" || got.Time != "2:00 PM" || got.Timezone != domain.DefaultTimezone {
		t.Errorf("Appointment fields lost: %+v", got)
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	lead := &domain.Lead{ID: "dup", Name: "n", Email: "e@example.com", Service: "s", CreatedAt: time.Now()}
	if err := repo.SaveLead(ctx, lead); err != nil {
		t.Fatalf("SaveLead: %v", err)
	}
	if err := repo.SaveLead(ctx, lead); err == nil {
		t.Fatal("Expected error on duplicate primary key")
	}
}

func TestPing(t *testing.T) {
	repo := newTestStore(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}

func TestExecWithBusyRetryGivesUpOnOtherErrors(t *testing.T) {
	calls := 0
	permanent := errors.New("constraint violation")
	err := execWithBusyRetry(context.Background(), func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("Expected the original error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("Non-busy error retried %d times", calls)
	}
}

func TestExecWithBusyRetryRetriesBusy(t *testing.T) {
	calls := 0
	err := execWithBusyRetry(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errors.New("database is locked")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Expected eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls)
	}
}
