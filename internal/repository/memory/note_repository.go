package memory

import (
	"context"
	"sort"
	"time"

	"notes-manager/internal/entity"
	"notes-manager/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// NoteRepository is an in-memory NoteRepository backed by go-cache.
// It backs unit tests and the db-less dev mode; entries never expire.
type NoteRepository struct {
	cache *cache.Cache
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	if note.Id == uuid.Nil {
		note.Id = uuid.New()
	}
	now := time.Now()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = now
	}
	stored := *note
	r.cache.Set(note.Id.String(), &stored, cache.NoExpiration)
	return nil
}

func (r *NoteRepository) Update(ctx context.Context, note *entity.Note) error {
	stored := *note
	r.cache.Set(note.Id.String(), &stored, cache.NoExpiration)
	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

func (r *NoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	notes := r.filter(specs...)
	if len(notes) == 0 {
		return nil, nil
	}
	return notes[0], nil
}

func (r *NoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	return r.filter(specs...), nil
}

func (r *NoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.filter(specs...))), nil
}

// filter interprets the same specifications the GORM repository feeds to SQL.
func (r *NoteRepository) filter(specs ...specification.Specification) []*entity.Note {
	notes := make([]*entity.Note, 0, r.cache.ItemCount())
	for _, item := range r.cache.Items() {
		n := *(item.Object.(*entity.Note))
		notes = append(notes, &n)
	}

	limit := -1
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			filtered := notes[:0]
			for _, n := range notes {
				if n.Id == s.ID {
					filtered = append(filtered, n)
				}
			}
			notes = filtered
		case specification.OrderBy:
			sortNotes(notes, s)
		case specification.Limit:
			limit = s.Count
		}
	}

	if limit >= 0 && len(notes) > limit {
		notes = notes[:limit]
	}
	return notes
}

func sortNotes(notes []*entity.Note, order specification.OrderBy) {
	sort.SliceStable(notes, func(i, j int) bool {
		var before bool
		switch order.Field {
		case "created_at":
			before = notes[i].CreatedAt.Before(notes[j].CreatedAt)
		default: // updated_at
			before = notes[i].UpdatedAt.Before(notes[j].UpdatedAt)
		}
		if order.Desc {
			return !before
		}
		return before
	})
}
