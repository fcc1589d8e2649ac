package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"notes-manager/internal/constant"
	"notes-manager/internal/dto"
	"notes-manager/internal/entity"
	"notes-manager/internal/pkg/apperror"
	"notes-manager/internal/pkg/logger"
	"notes-manager/internal/repository/specification"
	"notes-manager/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteNoteResponse, error)
}

type noteService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	sysLogger        logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	sysLogger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		sysLogger:        sysLogger,
	}
}

func (c *noteService) Create(ctx context.Context, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	title := sanitize(req.Title, constant.MaxTitleLength)
	description := sanitize(req.Description, constant.MaxDescriptionLength)

	if title == "" && description == "" {
		return nil, apperror.NewValidation("At least one field (title or description) must be provided")
	}

	now := time.Now()
	note := entity.Note{
		Id:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, &note); err != nil {
		return nil, apperror.NewUnavailable("Failed to create note", err)
	}

	c.publishActivity(ctx, constant.EventNoteCreated, &note)

	return toNoteResponse(&note), nil
}

func (c *noteService) List(ctx context.Context) ([]*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	notes, err := uow.NoteRepository().FindAll(ctx,
		specification.OrderBy{Field: "updated_at", Desc: true},
		specification.Limit{Count: constant.MaxListNotes},
	)
	if err != nil {
		return nil, apperror.NewUnavailable("Failed to fetch notes", err)
	}

	res := make([]*dto.NoteResponse, len(notes))
	for i, note := range notes {
		res[i] = toNoteResponse(note)
	}
	return res, nil
}

func (c *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewUnavailable("Failed to fetch note", err)
	}
	if note == nil {
		return nil, apperror.NewNotFound("Note not found")
	}

	return toNoteResponse(note), nil
}

func (c *noteService) Update(ctx context.Context, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	if req.Title == nil && req.Description == nil {
		return nil, apperror.NewValidation("At least one field (title or description) must be provided")
	}

	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, apperror.NewUnavailable("Failed to fetch note", err)
	}
	if note == nil {
		return nil, apperror.NewNotFound("Note not found")
	}

	if req.Title != nil {
		note.Title = sanitize(*req.Title, constant.MaxTitleLength)
	}
	if req.Description != nil {
		note.Description = sanitize(*req.Description, constant.MaxDescriptionLength)
	}

	// UpdatedAt must advance strictly even when clock granularity is coarse.
	now := time.Now()
	if !now.After(note.UpdatedAt) {
		now = note.UpdatedAt.Add(time.Nanosecond)
	}
	note.UpdatedAt = now

	if err := uow.NoteRepository().Update(ctx, note); err != nil {
		return nil, apperror.NewUnavailable("Failed to update note", err)
	}

	c.publishActivity(ctx, constant.EventNoteUpdated, note)

	return toNoteResponse(note), nil
}

func (c *noteService) Delete(ctx context.Context, id uuid.UUID) (*dto.DeleteNoteResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	note, err := uow.NoteRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.NewUnavailable("Failed to fetch note", err)
	}
	if note == nil {
		return nil, apperror.NewNotFound("Note not found")
	}

	if err := uow.NoteRepository().Delete(ctx, id); err != nil {
		return nil, apperror.NewUnavailable("Failed to delete note", err)
	}

	c.publishActivity(ctx, constant.EventNoteDeleted, note)

	return &dto.DeleteNoteResponse{DeletedId: id}, nil
}

// publishActivity is best-effort: the activity feed is auxiliary and must
// never fail the request.
func (c *noteService) publishActivity(ctx context.Context, eventType string, note *entity.Note) {
	if c.publisherService == nil {
		return
	}

	payload, err := json.Marshal(dto.NoteActivityMessage{
		Type:       eventType,
		NoteId:     note.Id,
		Title:      note.Title,
		OccurredAt: time.Now(),
	})
	if err != nil {
		c.sysLogger.Warn("note", "Failed to marshal activity event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
		return
	}

	if err := c.publisherService.Publish(ctx, payload); err != nil {
		c.sysLogger.Warn("note", "Failed to publish activity event", map[string]interface{}{
			"type":  eventType,
			"error": err.Error(),
		})
	}
}

func sanitize(value string, max int) string {
	value = strings.TrimSpace(value)
	if runes := []rune(value); len(runes) > max {
		return string(runes[:max])
	}
	return value
}

func toNoteResponse(note *entity.Note) *dto.NoteResponse {
	return &dto.NoteResponse{
		Id:          note.Id,
		Title:       note.Title,
		Description: note.Description,
		CreatedAt:   note.CreatedAt,
		UpdatedAt:   note.UpdatedAt,
	}
}
