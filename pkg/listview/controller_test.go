package listview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"notes-manager/pkg/client"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a scriptable stand-in for the SDK.
type fakeAPI struct {
	mu    sync.Mutex
	notes []client.Note

	failCreate bool
	failUpdate bool
	failDelete bool

	// when set, DeleteNote blocks until the channel is closed
	deleteGate chan struct{}
	deleteBusy chan struct{}
}

var errBackend = errors.New("backend unavailable")

func (f *fakeAPI) ListNotes(ctx context.Context) ([]client.Note, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]client.Note, len(f.notes))
	copy(out, f.notes)
	return out, nil
}

func (f *fakeAPI) CreateNote(ctx context.Context, title, description string) (*client.Note, error) {
	if f.failCreate {
		return nil, errBackend
	}
	note := client.Note{
		Id:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.mu.Lock()
	f.notes = append([]client.Note{note}, f.notes...)
	f.mu.Unlock()
	return &note, nil
}

func (f *fakeAPI) UpdateNote(ctx context.Context, id uuid.UUID, fields client.NoteFields) (*client.Note, error) {
	if f.failUpdate {
		return nil, errBackend
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notes {
		if f.notes[i].Id == id {
			if fields.Title != nil {
				f.notes[i].Title = *fields.Title
			}
			if fields.Description != nil {
				f.notes[i].Description = *fields.Description
			}
			f.notes[i].UpdatedAt = time.Now()
			n := f.notes[i]
			return &n, nil
		}
	}
	return nil, errBackend
}

func (f *fakeAPI) DeleteNote(ctx context.Context, id uuid.UUID) (bool, error) {
	if f.deleteBusy != nil {
		f.deleteBusy <- struct{}{}
	}
	if f.deleteGate != nil {
		<-f.deleteGate
	}
	if f.failDelete {
		return false, errBackend
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notes {
		if f.notes[i].Id == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return true, nil
		}
	}
	return false, errBackend
}

func seededController(t *testing.T, titles ...string) (*Controller, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{}
	for _, title := range titles {
		api.notes = append(api.notes, client.Note{Id: uuid.New(), Title: title})
	}
	ctrl := NewController(api)
	require.NoError(t, ctrl.Load(context.Background()))
	return ctrl, api
}

func titlesOf(notes []client.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestCreateReplacesProvisionalWithServerRecord(t *testing.T) {
	ctrl, _ := seededController(t, "existing")

	created, err := ctrl.Create(context.Background(), "fresh", "body")
	require.NoError(t, err)

	notes := ctrl.Snapshot()
	require.Len(t, notes, 2)
	assert.Equal(t, created.Id, notes[0].Id, "provisional id must be replaced by the canonical one")
	assert.Equal(t, "fresh", notes[0].Title)

	for _, item := range ctrl.Items() {
		assert.Equal(t, StateConfirmed, item.State)
	}
}

func TestCreateFailureRemovesProvisional(t *testing.T) {
	ctrl, api := seededController(t, "existing")
	api.failCreate = true

	_, err := ctrl.Create(context.Background(), "doomed", "")
	require.ErrorIs(t, err, errBackend)

	assert.Equal(t, []string{"existing"}, titlesOf(ctrl.Snapshot()),
		"a failed create must leave no provisional record behind")
}

func TestUpdateIsNotOptimistic(t *testing.T) {
	ctrl, api := seededController(t, "before")
	api.failUpdate = true
	id := ctrl.Snapshot()[0].Id

	_, err := ctrl.Update(context.Background(), id, client.NoteFields{Title: strPtr("after")})
	require.ErrorIs(t, err, errBackend)
	assert.Equal(t, []string{"before"}, titlesOf(ctrl.Snapshot()),
		"a failed update must leave the local list untouched")

	api.failUpdate = false
	updated, err := ctrl.Update(context.Background(), id, client.NoteFields{Title: strPtr("after")})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, []string{"after"}, titlesOf(ctrl.Snapshot()))
}

func TestDeleteRollbackRestoresOriginalPosition(t *testing.T) {
	ctrl, api := seededController(t, "first", "second", "third")
	api.failDelete = true
	id := ctrl.Snapshot()[1].Id

	err := ctrl.Delete(context.Background(), id)
	require.ErrorIs(t, err, errBackend)

	assert.Equal(t, []string{"first", "second", "third"}, titlesOf(ctrl.Snapshot()),
		"the deleted note must reappear at its original position")
}

func TestDeleteHidesNoteImmediatelyAndSettles(t *testing.T) {
	ctrl, api := seededController(t, "keep", "drop")
	api.deleteGate = make(chan struct{})
	api.deleteBusy = make(chan struct{}, 1)
	id := ctrl.Snapshot()[1].Id

	done := make(chan error, 1)
	go func() { done <- ctrl.Delete(context.Background(), id) }()

	<-api.deleteBusy
	assert.Equal(t, []string{"keep"}, titlesOf(ctrl.Snapshot()),
		"the note must disappear before the call settles")

	close(api.deleteGate)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"keep"}, titlesOf(ctrl.Snapshot()))
}

func TestPendingDeleteActsAsLock(t *testing.T) {
	ctrl, api := seededController(t, "only")
	api.deleteGate = make(chan struct{})
	api.deleteBusy = make(chan struct{}, 1)
	id := ctrl.Items()[0].Note.Id

	done := make(chan error, 1)
	go func() { done <- ctrl.Delete(context.Background(), id) }()
	<-api.deleteBusy

	// Second mutation on the same note while the first is in flight
	err := ctrl.Delete(context.Background(), id)
	assert.ErrorIs(t, err, ErrMutationPending)
	_, err = ctrl.Update(context.Background(), id, client.NoteFields{Title: strPtr("x")})
	assert.ErrorIs(t, err, ErrMutationPending)

	close(api.deleteGate)
	require.NoError(t, <-done)
}

func TestLoadFailureDoesNotMaskAsEmpty(t *testing.T) {
	api := &fakeAPI{notes: []client.Note{{Id: uuid.New(), Title: "cached"}}}
	ctrl := NewController(api)
	require.NoError(t, ctrl.Load(context.Background()))

	failing := &failingListAPI{}
	ctrl.api = failing

	err := ctrl.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"cached"}, titlesOf(ctrl.Snapshot()),
		"a failed refresh must keep the previous list, not pretend it is empty")
}

type failingListAPI struct{ fakeAPI }

func (f *failingListAPI) ListNotes(ctx context.Context) ([]client.Note, error) {
	return nil, errBackend
}

func strPtr(s string) *string { return &s }
