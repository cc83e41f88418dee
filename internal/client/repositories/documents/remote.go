package documents

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/plaintheory/internal/client/client"
	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
)

type RemoteRepository struct {
	api   client.DocumentsAPI
	blobs BlobRemover
	log   logging.Logger
}

func NewRemoteRepository(api client.DocumentsAPI, blobs BlobRemover, log logging.Logger) *RemoteRepository {
	return &RemoteRepository{api: api, blobs: blobs, log: log.With("module", "documents")}
}

func notApplied(err error) error {
	return fmt.Errorf("%w: %w", common.ErrNotApplied, err)
}

func (r *RemoteRepository) ListForNote(ctx context.Context, noteID string) ([]models.Document, error) {
	docs, err := r.api.ListDocuments(ctx, noteID)
	if err != nil {
		return nil, notApplied(err)
	}
	if docs == nil {
		docs = []models.Document{}
	}
	return docs, nil
}

func (r *RemoteRepository) Create(ctx context.Context, d models.Document) (*models.Document, error) {
	doc, err := r.api.CreateDocument(ctx, d)
	if err != nil {
		return nil, notApplied(err)
	}
	return doc, nil
}

// StorageKey returns the blob key of d. Rows written before keys were stored
// fall back to the last two segments of the public URL.
func StorageKey(d models.Document) (string, bool) {
	if d.StorageKey != "" {
		return d.StorageKey, true
	}
	return common.StorageKeyFromURL(d.FileURL)
}

func (r *RemoteRepository) Delete(ctx context.Context, d models.Document) error {
	key, ok := StorageKey(d)
	if !ok {
		return notApplied(fmt.Errorf("%w: no storage key for document %s", common.ErrorValidation, d.ID))
	}

	if err := r.blobs.Remove(ctx, key); err != nil {
		return notApplied(fmt.Errorf("remove blob: %w", err))
	}

	if err := r.api.DeleteDocument(ctx, d.ID); err != nil {
		r.log.Warn(ctx, "blob removed but row kept", "document_id", d.ID, "key", key, "error", err)
		return notApplied(err)
	}
	return nil
}
