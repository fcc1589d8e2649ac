package database

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestEnsureSharesSingleDialAttempt(t *testing.T) {
	var dials int64
	open := func(dsn string) (*gorm.DB, error) {
		atomic.AddInt64(&dials, 1)
		time.Sleep(20 * time.Millisecond) // widen the race window
		return &gorm.DB{}, nil
	}

	m := NewManagerWithOpener("postgres://example", open)

	const callers = 16
	results := make([]*gorm.DB, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			db, err := m.Ensure(context.Background())
			assert.NoError(t, err)
			results[i] = db
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), atomic.LoadInt64(&dials),
		"concurrent first callers must share one dial attempt")
	for _, db := range results {
		assert.Same(t, results[0], db)
	}
}

func TestEnsureRetriesAfterFailure(t *testing.T) {
	var dials int64
	open := func(dsn string) (*gorm.DB, error) {
		if atomic.AddInt64(&dials, 1) == 1 {
			return nil, errors.New("connection refused")
		}
		return &gorm.DB{}, nil
	}

	m := NewManagerWithOpener("postgres://example", open)

	_, err := m.Ensure(context.Background())
	require.Error(t, err)

	db, err := m.Ensure(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, db)
	assert.Equal(t, int64(2), atomic.LoadInt64(&dials))
}

func TestEnsureIsMemoizedAfterSuccess(t *testing.T) {
	var dials int64
	open := func(dsn string) (*gorm.DB, error) {
		atomic.AddInt64(&dials, 1)
		return &gorm.DB{}, nil
	}

	m := NewManagerWithOpener("postgres://example", open)

	first, err := m.Ensure(context.Background())
	require.NoError(t, err)
	second, err := m.Ensure(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(&dials))
}

func TestPingReportsDisconnectedBeforeDial(t *testing.T) {
	m := NewManagerWithOpener("postgres://example", func(string) (*gorm.DB, error) {
		return &gorm.DB{}, nil
	})

	assert.Error(t, m.Ping(context.Background()))
}
