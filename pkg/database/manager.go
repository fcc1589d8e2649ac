package database

import (
	"context"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

// OpenFunc dials the database. Swappable in tests.
type OpenFunc func(dsn string) (*gorm.DB, error)

// Manager owns the process-wide database handle. Ensure is idempotent:
// concurrent first callers await a single in-flight dial instead of racing
// to open duplicate connections, and a failed attempt clears so the next
// caller can retry.
type Manager struct {
	dsn  string
	open OpenFunc

	mu      sync.Mutex
	db      *gorm.DB
	attempt *dialAttempt
}

type dialAttempt struct {
	done chan struct{}
	db   *gorm.DB
	err  error
}

func NewManager(dsn string) *Manager {
	return NewManagerWithOpener(dsn, NewGormDBFromDSN)
}

func NewManagerWithOpener(dsn string, open OpenFunc) *Manager {
	return &Manager{
		dsn:  dsn,
		open: open,
	}
}

// Ensure returns the shared handle, dialing it on first use.
func (m *Manager) Ensure(ctx context.Context) (*gorm.DB, error) {
	m.mu.Lock()
	if m.db != nil {
		db := m.db
		m.mu.Unlock()
		return db, nil
	}

	attempt := m.attempt
	if attempt == nil {
		attempt = &dialAttempt{done: make(chan struct{})}
		m.attempt = attempt
		go m.dial(attempt)
	}
	m.mu.Unlock()

	select {
	case <-attempt.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return attempt.db, attempt.err
}

func (m *Manager) dial(attempt *dialAttempt) {
	db, err := m.open(m.dsn)

	m.mu.Lock()
	if err == nil {
		m.db = db
	}
	// Clear the attempt either way; on failure the next Ensure retries.
	m.attempt = nil
	m.mu.Unlock()

	attempt.db = db
	attempt.err = err
	close(attempt.done)
}

// Ping reports the health of the current connection without forcing a dial.
func (m *Manager) Ping(ctx context.Context) error {
	m.mu.Lock()
	db := m.db
	m.mu.Unlock()

	if db == nil {
		return fmt.Errorf("database not connected")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
