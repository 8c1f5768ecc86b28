package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		service TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_leads_created ON leads(created_at);

	CREATE TABLE IF NOT EXISTS appointments (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		service TEXT NOT NULL,
		timezone TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_appointments_created ON appointments(created_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// SaveLead persists a completed lead record.
// Writes race with nothing but other writes, so a short busy-retry loop
// keeps them from surfacing SQLITE_BUSY to callers.
func (s *SQLiteStore) SaveLead(ctx context.Context, lead *domain.Lead) error {
	query := `
	INSERT INTO leads (id, name, email, service, created_at)
	VALUES (?, ?, ?, ?, ?)`

	err := execWithBusyRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query,
			lead.ID, lead.Name, lead.Email, lead.Service, lead.CreatedAt.Unix())
		return err
	})
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// ListLeads retrieves leads, newest first.
func (s *SQLiteStore) ListLeads(ctx context.Context, limit int) ([]*domain.Lead, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, name, email, service, created_at
		FROM leads ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close leads rows", "error", closeErr)
		}
	}()

	var leads []*domain.Lead
	for rows.Next() {
		var lead domain.Lead
		var createdAt int64
		if err := rows.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Service, &createdAt); err != nil {
			return nil, fmt.Errorf("scan lead row: %w", err)
		}
		lead.CreatedAt = time.Unix(createdAt, 0)
		leads = append(leads, &lead)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leads: %w", err)
	}
	return leads, nil
}

// SaveAppointment persists a committed booking.
func (s *SQLiteStore) SaveAppointment(ctx context.Context, appt *domain.Appointment) error {
	query := `
	INSERT INTO appointments (id, name, email, date, time, service, timezone, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	err := execWithBusyRetry(ctx, func() error {
		_, err := s.db.ExecContext(ctx, query,
			appt.ID, appt.Name, appt.Email, appt.Date, appt.Time,
			appt.Service, appt.Timezone, appt.CreatedAt.Unix())
		return err
	})
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

// ListAppointments retrieves appointments, newest first.
func (s *SQLiteStore) ListAppointments(ctx context.Context, limit int) ([]*domain.Appointment, error) {
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, name, email, date, time, service, timezone, created_at
		FROM appointments ORDER BY created_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query appointments: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			slog.Warn("failed to close appointments rows", "error", closeErr)
		}
	}()

	var appts []*domain.Appointment
	for rows.Next() {
		var appt domain.Appointment
		var createdAt int64
		if err := rows.Scan(&appt.ID, &appt.Name, &appt.Email, &appt.Date, &appt.Time,
			&appt.Service, &appt.Timezone, &createdAt); err != nil {
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appt.CreatedAt = time.Unix(createdAt, 0)
		appts = append(appts, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}
	return appts, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
