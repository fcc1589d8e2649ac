package service

import (
	"context"
	"strings"
	"testing"

	"notes-manager/internal/dto"
	"notes-manager/internal/pkg/apperror"
	"notes-manager/internal/repository/memory"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() INoteService {
	return NewNoteService(memory.NewRepositoryFactory(), nil, nil)
}

func strPtr(s string) *string {
	return &s
}

func TestCreateAndShow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{
		Title:       "  Shopping list  ",
		Description: "  milk and eggs  ",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Id)
	assert.Equal(t, "Shopping list", created.Title)
	assert.Equal(t, "milk and eggs", created.Description)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateTruncatesLongFields(t *testing.T) {
	svc := newTestService()

	created, err := svc.Create(context.Background(), &dto.CreateNoteRequest{
		Title:       strings.Repeat("a", 600),
		Description: strings.Repeat("b", 6000),
	})
	require.NoError(t, err)
	assert.Len(t, created.Title, 500)
	assert.Len(t, created.Description, 5000)
}

func TestCreateRejectsEmptyFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateNoteRequest
	}{
		{"both empty", dto.CreateNoteRequest{}},
		{"whitespace only", dto.CreateNoteRequest{Title: "   ", Description: "\t\n"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tc.req)
			require.Error(t, err)
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, fiber.StatusBadRequest, appErr.Status)

			// Nothing may be persisted on rejection
			notes, err := svc.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, notes)
		})
	}
}

func TestUpdateReplacesOnlyProvidedFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "original", Description: "keep me"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateNoteRequest{
		Id:    created.Id,
		Title: strPtr("  changed  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "changed", updated.Title)
	assert.Equal(t, "keep me", updated.Description)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "note"})
	require.NoError(t, err)

	t.Run("no fields present", func(t *testing.T) {
		_, err := svc.Update(ctx, &dto.UpdateNoteRequest{Id: created.Id})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusBadRequest, appErr.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, &dto.UpdateNoteRequest{Id: uuid.New(), Title: strPtr("x")})
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusNotFound, appErr.Status)
	})
}

func TestDeleteIsPermanent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "to delete"})
	require.NoError(t, err)

	res, err := svc.Delete(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Id, res.DeletedId)

	_, err = svc.Show(ctx, created.Id)
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.Status)

	// Deleting again reports not found, not a crash
	_, err = svc.Delete(ctx, created.Id)
	appErr, ok = apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, appErr.Status)
}

func TestListOrderingAndCount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ids := make([]uuid.UUID, 0, 5)
	for _, title := range []string{"one", "two", "three", "four", "five"} {
		created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: title})
		require.NoError(t, err)
		ids = append(ids, created.Id)
	}

	_, err := svc.Delete(ctx, ids[0])
	require.NoError(t, err)
	_, err = svc.Delete(ctx, ids[1])
	require.NoError(t, err)

	notes, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)

	for i := 1; i < len(notes); i++ {
		assert.False(t, notes[i-1].UpdatedAt.Before(notes[i].UpdatedAt),
			"notes must be ordered by updated_at descending")
	}

	// Updating a note moves it to the front
	updated, err := svc.Update(ctx, &dto.UpdateNoteRequest{Id: ids[2], Title: strPtr("three updated")})
	require.NoError(t, err)

	notes, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, updated.Id, notes[0].Id)
}

func TestShowIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "stable"})
	require.NoError(t, err)

	first, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	second, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
