package notes

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
)

// Repository is the workspace view of the caller's notes.
type Repository interface {
	// List returns the caller's notes, most recently updated first.
	List(ctx context.Context) ([]models.Note, error)

	// Create inserts a note. An empty title becomes common.UntitledNote.
	Create(ctx context.Context, title, content string) (*models.Note, error)

	Get(ctx context.Context, id string) (*models.Note, error)

	// Update persists title and content and returns the stored row with a
	// newer updated_at.
	Update(ctx context.Context, id, title, content string) (*models.Note, error)

	Delete(ctx context.Context, id string) error
}
