package unitofwork

import (
	"context"

	"notes-manager/internal/entity"
	"notes-manager/internal/repository/contract"
	"notes-manager/internal/repository/specification"
	"notes-manager/pkg/database"

	"github.com/google/uuid"
)

// LazyRepositoryFactory defers the database dial to the first unit of work.
// The manager memoizes the in-flight attempt, so concurrent first requests
// share one dial; a failed dial surfaces on every repository call until a
// later attempt succeeds.
type LazyRepositoryFactory struct {
	manager *database.Manager
}

func NewLazyRepositoryFactory(manager *database.Manager) RepositoryFactory {
	return &LazyRepositoryFactory{
		manager: manager,
	}
}

func (f *LazyRepositoryFactory) NewUnitOfWork(ctx context.Context) UnitOfWork {
	db, err := f.manager.Ensure(ctx)
	if err != nil {
		return &unavailableUnitOfWork{err: err}
	}
	return NewUnitOfWork(db)
}

type unavailableUnitOfWork struct {
	err error
}

func (u *unavailableUnitOfWork) Begin(ctx context.Context) error { return u.err }
func (u *unavailableUnitOfWork) Commit() error                   { return u.err }
func (u *unavailableUnitOfWork) Rollback() error                 { return u.err }

func (u *unavailableUnitOfWork) NoteRepository() contract.NoteRepository {
	return &unavailableNoteRepository{err: u.err}
}

type unavailableNoteRepository struct {
	err error
}

func (r *unavailableNoteRepository) Create(ctx context.Context, note *entity.Note) error {
	return r.err
}

func (r *unavailableNoteRepository) Update(ctx context.Context, note *entity.Note) error {
	return r.err
}

func (r *unavailableNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.err
}

func (r *unavailableNoteRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error) {
	return nil, r.err
}

func (r *unavailableNoteRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error) {
	return nil, r.err
}

func (r *unavailableNoteRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, r.err
}
