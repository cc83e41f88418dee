// Package notes stores notes. Every operation is scoped to an owner: rows of
// other owners behave as if they did not exist.
package notes

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/server/models"
)

type Repository interface {
	// List returns the owner's notes, most recently updated first.
	List(ctx context.Context, ownerID string) ([]*models.Note, error)
	Create(ctx context.Context, ownerID, title, content string) (*models.Note, error)
	Get(ctx context.Context, ownerID, id string) (*models.Note, error)
	// Update replaces title and content and advances updated_at strictly.
	Update(ctx context.Context, ownerID, id, title, content string) (*models.Note, error)
	Delete(ctx context.Context, ownerID, id string) error
}
