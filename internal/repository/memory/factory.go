package memory

import (
	"context"

	"notes-manager/internal/repository/contract"
	"notes-manager/internal/repository/unitofwork"
)

// RepositoryFactory hands out units of work over a single shared in-memory
// repository. Begin/Commit/Rollback are no-ops; there is nothing to roll back.
type RepositoryFactory struct {
	notes *NoteRepository
}

func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{
		notes: NewNoteRepository(),
	}
}

func (f *RepositoryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memoryUnitOfWork{notes: f.notes}
}

type memoryUnitOfWork struct {
	notes *NoteRepository
}

func (u *memoryUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memoryUnitOfWork) Commit() error                   { return nil }
func (u *memoryUnitOfWork) Rollback() error                 { return nil }

func (u *memoryUnitOfWork) NoteRepository() contract.NoteRepository {
	return u.notes
}
