// Package documents stores attachment metadata rows. A document always
// belongs to a note of the same owner.
package documents

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/server/models"
)

type Repository interface {
	// ListForNote returns the note's documents, newest first.
	ListForNote(ctx context.Context, ownerID, noteID string) ([]*models.Document, error)
	// Create inserts d only if d.NoteID is owned by d.OwnerID.
	Create(ctx context.Context, d *models.Document) (*models.Document, error)
	Get(ctx context.Context, ownerID, id string) (*models.Document, error)
	Delete(ctx context.Context, ownerID, id string) error
	// StorageKeysForNote lists the blob keys referenced by a note's documents.
	StorageKeysForNote(ctx context.Context, ownerID, noteID string) ([]string, error)
}
