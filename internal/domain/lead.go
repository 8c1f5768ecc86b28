package domain

import (
	"net/mail"
	"strings"
	"time"
)

// LeadRecord accumulates a prospective customer's contact details during
// the lead-capture flow. Fields are filled one per turn, name first.
type LeadRecord struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Service string `json:"service"`
}

// Complete reports whether the record can be handed to the host:
// both name and email must be non-empty.
func (l *LeadRecord) Complete() bool {
	return strings.TrimSpace(l.Name) != "" && strings.TrimSpace(l.Email) != ""
}

// Reset clears the record after completion or cancellation.
func (l *LeadRecord) Reset() {
	*l = LeadRecord{}
}

// ValidEmail reports whether s parses as an RFC 5322 address.
func ValidEmail(s string) bool {
	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	return err == nil && addr.Address != ""
}

// Lead is a persisted, completed lead record.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Service   string    `json:"service"`
	CreatedAt time.Time `json:"created_at"`
}
