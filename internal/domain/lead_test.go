package domain

import "testing"

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"jane@example.com", true},
		{"  jane@example.com  ", true},
		{"Jane Smith <jane@example.com>", true},
		{"jane", false},
		{"jane@", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidEmail(tt.in); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLeadRecordComplete(t *testing.T) {
	l := &LeadRecord{}
	if l.Complete() {
		t.Error("Empty record reported complete")
	}
	l.Name = "Jane"
	if l.Complete() {
		t.Error("Record without email reported complete")
	}
	l.Email = "jane@example.com"
	if !l.Complete() {
		t.Error("Full record reported incomplete")
	}

	l.Reset()
	if l.Name != "" || l.Email != "" || l.Complete() {
		t.Errorf("Reset left data behind: %+v", l)
	}
}

func TestAppointmentDraftDefaults(t *testing.T) {
	d := NewAppointmentDraft()
	if d.Service != DefaultService {
		t.Errorf("Service = %q, want %q", d.Service, DefaultService)
	}
	if d.Timezone != DefaultTimezone {
		t.Errorf("Timezone = %q, want %q", d.Timezone, DefaultTimezone)
	}

	d.Name = "Jane"
	d.Date = "Tuesday, Jun 2"
	d.Reset()
	if d.Name != "" || d.Date != "" {
		t.Errorf("Reset left data behind: %+v", d)
	}
	if d.Service != DefaultService {
		t.Errorf("Reset dropped default service: %+v", d)
	}
}
