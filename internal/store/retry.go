package store

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const (
	busyMaxRetries = 3
	busyBaseDelay  = 100 * time.Millisecond
)

// isBusyError reports whether err is a SQLite concurrency error
// (SQLITE_BUSY or "database is locked") that warrants a retry.
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "SQLITE_BUSY") ||
		strings.Contains(err.Error(), "database is locked")
}

// execWithBusyRetry runs fn, retrying SQLite busy errors with
// exponential backoff: 100ms, 200ms, 400ms.
func execWithBusyRetry(ctx context.Context, fn func() error) error {
	var err error
	for i := 0; i < busyMaxRetries; i++ {
		err = fn()
		if err == nil || !isBusyError(err) {
			return err
		}
		if i < busyMaxRetries-1 {
			delay := busyBaseDelay * time.Duration(1<<i)
			slog.Debug("SQLite busy, retrying", "attempt", i+1, "delay", delay)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return err
}
