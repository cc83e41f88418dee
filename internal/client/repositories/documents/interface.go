package documents

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
)

// Repository is the workspace view of a note's attachments.
type Repository interface {
	// ListForNote returns the note's documents, newest first.
	ListForNote(ctx context.Context, noteID string) ([]models.Document, error)

	// Create inserts the metadata row for an uploaded blob.
	Create(ctx context.Context, d models.Document) (*models.Document, error)

	// Delete removes the blob and then the row.
	Delete(ctx context.Context, d models.Document) error
}

// BlobRemover deletes a blob by key.
type BlobRemover interface {
	Remove(ctx context.Context, key string) error
}
