package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/notes/api/internal/core/domain"
)

type NoteRepository interface {
	Save(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Note, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type CreateNoteInput struct {
	Title   string
	Content string
}

type UpdateNoteInput struct {
	Title   *string
	Content *string
}

type NoteService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateNoteInput) (*domain.Note, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Note, error)
	Update(ctx context.Context, id, userID uuid.UUID, input UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
