// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// Repository defines the interface for persisting leads and appointments.
type Repository interface {
	// SaveLead persists a completed lead record.
	SaveLead(ctx context.Context, lead *domain.Lead) error

	// ListLeads retrieves leads, newest first.
	ListLeads(ctx context.Context, limit int) ([]*domain.Lead, error)

	// SaveAppointment persists a committed booking.
	SaveAppointment(ctx context.Context, appt *domain.Appointment) error

	// ListAppointments retrieves appointments, newest first.
	ListAppointments(ctx context.Context, limit int) ([]*domain.Appointment, error)

	// Ping verifies database connectivity and returns an error if the database is unreachable.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
