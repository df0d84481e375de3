package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/notes/api/internal/core/domain"
	"github.com/notes/api/internal/core/ports"
)

type noteService struct {
	repo ports.NoteRepository
}

func NewNoteService(repo ports.NoteRepository) ports.NoteService {
	return &noteService{
		repo: repo,
	}
}

func (s *noteService) Create(ctx context.Context, userID uuid.UUID, input ports.CreateNoteInput) (*domain.Note, error) {
	if input.Title == "" {
		return nil, errors.New("title is required")
	}
	if input.Content == "" {
		return nil, errors.New("content is required")
	}

	now := time.Now()
	note := &domain.Note{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) Get(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	return s.authorize(ctx, id, userID)
}

func (s *noteService) List(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *noteService) Update(ctx context.Context, id, userID uuid.UUID, input ports.UpdateNoteInput) (*domain.Note, error) {
	if input.Title == nil && input.Content == nil {
		return nil, errors.New("at least one of title or content is required")
	}
	if input.Title != nil && *input.Title == "" {
		return nil, errors.New("title cannot be empty")
	}
	if input.Content != nil && *input.Content == "" {
		return nil, errors.New("content cannot be empty")
	}

	note, err := s.authorize(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	note.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.authorize(ctx, id, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// authorize fetches a note and enforces ownership. Every read, update and
// delete goes through here; a mismatch reveals nothing about the note itself.
func (s *noteService) authorize(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	note, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, domain.ErrNoteNotFound
	}
	if note.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return note, nil
}
