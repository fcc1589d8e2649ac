package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"notes-manager/internal/constant"
	"notes-manager/internal/dto"
	"notes-manager/internal/repository/memory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	module  string
	message string
	details map[string]interface{}
}

// captureLogger records entries so tests can assert on the activity feed.
type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *captureLogger) record(module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{module, message, details})
}

func (l *captureLogger) Debug(module, message string, details map[string]interface{}) {
	l.record(module, message, details)
}
func (l *captureLogger) Info(module, message string, details map[string]interface{}) {
	l.record(module, message, details)
}
func (l *captureLogger) Warn(module, message string, details map[string]interface{}) {
	l.record(module, message, details)
}
func (l *captureLogger) Error(module, message string, details map[string]interface{}) {
	l.record(module, message, details)
}
func (l *captureLogger) Sync() error { return nil }

func (l *captureLogger) byModule(module string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []logEntry
	for _, e := range l.entries {
		if e.module == module {
			out = append(out, e)
		}
	}
	return out
}

func TestNoteMutationsReachActivityFeed(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	capture := &captureLogger{}

	consumer := NewConsumerService(pubSub, "TEST_ACTIVITY", capture)
	require.NoError(t, consumer.Consume(context.Background()))

	publisher := NewPublisherService("TEST_ACTIVITY", pubSub)
	svc := NewNoteService(memory.NewRepositoryFactory(), publisher, capture)

	ctx := context.Background()
	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "observed"})
	require.NoError(t, err)
	_, err = svc.Delete(ctx, created.Id)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return len(capture.byModule("activity")) == 2
	}, 2*time.Second, 10*time.Millisecond)

	entries := capture.byModule("activity")
	require.Len(t, entries, 2)
	assert.Equal(t, constant.EventNoteCreated, entries[0].message)
	assert.Equal(t, constant.EventNoteDeleted, entries[1].message)
	assert.Equal(t, created.Id.String(), entries[0].details["note_id"])
}
