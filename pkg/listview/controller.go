// Package listview holds the client-side list of notes and reconciles it
// with the server. Mutations are applied optimistically where the UX calls
// for it and rolled back when the backing call fails; renders are a pure
// function of the tagged item state.
package listview

import (
	"context"
	"errors"
	"sync"

	"notes-manager/pkg/client"

	"github.com/google/uuid"
)

type State int

const (
	StateConfirmed State = iota
	StatePendingCreate
	StatePendingDelete
)

// ErrMutationPending is returned when a second mutation targets a note whose
// previous mutation has not settled. The pending state acts as a lock:
// issuing the calls concurrently could resurrect a deleted note or create
// duplicates.
var ErrMutationPending = errors.New("a mutation is already pending for this note")

var ErrNoteNotFound = errors.New("note not present in the local list")

type Item struct {
	Note  client.Note
	State State
}

// API is the slice of the SDK the controller needs; satisfied by
// *client.Client.
type API interface {
	ListNotes(ctx context.Context) ([]client.Note, error)
	CreateNote(ctx context.Context, title, description string) (*client.Note, error)
	UpdateNote(ctx context.Context, id uuid.UUID, fields client.NoteFields) (*client.Note, error)
	DeleteNote(ctx context.Context, id uuid.UUID) (bool, error)
}

type Controller struct {
	api API

	mu    sync.Mutex
	items []Item
}

func NewController(api API) *Controller {
	return &Controller{
		api: api,
	}
}

// Load replaces the local list with the server state. A fetch failure is
// surfaced as an error and leaves the current list untouched; it must not
// masquerade as "no notes yet".
func (c *Controller) Load(ctx context.Context) error {
	notes, err := c.api.ListNotes(ctx)
	if err != nil {
		return err
	}

	items := make([]Item, len(notes))
	for i, n := range notes {
		items[i] = Item{Note: n, State: StateConfirmed}
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// Create prepends a provisional note under a temporary local id, then issues
// the create call. On success the provisional entry is replaced by the
// server record (canonical id); on failure it is removed.
func (c *Controller) Create(ctx context.Context, title, description string) (*client.Note, error) {
	tempId := uuid.New()
	provisional := Item{
		Note:  client.Note{Id: tempId, Title: title, Description: description},
		State: StatePendingCreate,
	}

	c.mu.Lock()
	c.items = append([]Item{provisional}, c.items...)
	c.mu.Unlock()

	created, err := c.api.CreateNote(ctx, title, description)

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := c.indexOf(tempId)
	if err != nil {
		if idx >= 0 {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
		}
		return nil, err
	}

	if idx >= 0 {
		c.items[idx] = Item{Note: *created, State: StateConfirmed}
	}
	return created, nil
}

// Update is not optimistic: the local list changes only after the server
// confirms, so a failure leaves the list untouched.
func (c *Controller) Update(ctx context.Context, id uuid.UUID, fields client.NoteFields) (*client.Note, error) {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return nil, ErrNoteNotFound
	}
	if c.items[idx].State != StateConfirmed {
		c.mu.Unlock()
		return nil, ErrMutationPending
	}
	c.mu.Unlock()

	updated, err := c.api.UpdateNote(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if idx := c.indexOf(id); idx >= 0 {
		c.items[idx] = Item{Note: *updated, State: StateConfirmed}
	}
	c.mu.Unlock()
	return updated, nil
}

// Delete hides the note immediately and issues the delete call. On failure
// the note reappears at its original position and the error is surfaced.
func (c *Controller) Delete(ctx context.Context, id uuid.UUID) error {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return ErrNoteNotFound
	}
	if c.items[idx].State != StateConfirmed {
		c.mu.Unlock()
		return ErrMutationPending
	}
	c.items[idx].State = StatePendingDelete
	c.mu.Unlock()

	_, err := c.api.DeleteNote(ctx, id)

	c.mu.Lock()
	defer c.mu.Unlock()

	idx = c.indexOf(id)
	if idx < 0 {
		return err
	}
	if err != nil {
		c.items[idx].State = StateConfirmed
		return err
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	return nil
}

// Snapshot returns the notes a view should render: everything except
// entries pending deletion. Provisional creates are included.
func (c *Controller) Snapshot() []client.Note {
	c.mu.Lock()
	defer c.mu.Unlock()

	notes := make([]client.Note, 0, len(c.items))
	for _, item := range c.items {
		if item.State == StatePendingDelete {
			continue
		}
		notes = append(notes, item.Note)
	}
	return notes
}

// Items exposes the tagged state for views that render pending markers.
func (c *Controller) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// indexOf must be called with the lock held.
func (c *Controller) indexOf(id uuid.UUID) int {
	for i, item := range c.items {
		if item.Note.Id == id {
			return i
		}
	}
	return -1
}
