package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/dmitrijs2005/plaintheory/internal/server/config"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plaintheory/internal/server/storage"
)

type DocumentsService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	blobs         storage.BlobStore
	log           logging.Logger
	maxUploadSize int64
}

func NewDocumentsService(db *sql.DB, m repomanager.RepositoryManager, blobs storage.BlobStore, log logging.Logger, cfg *config.Config) *DocumentsService {
	return &DocumentsService{
		db:            db,
		repomanager:   m,
		blobs:         blobs,
		log:           log.With("module", "documents"),
		maxUploadSize: cfg.MaxUploadSize,
	}
}

func (s *DocumentsService) List(ctx context.Context, ownerID, noteID string) ([]*models.Document, error) {
	if err := validateID(noteID); err != nil {
		return nil, err
	}
	return s.repomanager.Documents(s.db).ListForNote(ctx, ownerID, noteID)
}

// Create records an uploaded blob against a note of the caller. The owner is
// always the caller, whatever the request carried.
func (s *DocumentsService) Create(ctx context.Context, ownerID string, d *models.Document) (*models.Document, error) {
	if err := validateID(d.NoteID); err != nil {
		return nil, err
	}
	if d.FileName == "" {
		return nil, fmt.Errorf("%w: file name is required", common.ErrorValidation)
	}
	if d.FileSize < 0 {
		return nil, fmt.Errorf("%w: negative file size", common.ErrorValidation)
	}
	if d.FileSize > s.maxUploadSize {
		return nil, common.ErrFileTooLarge
	}

	doc := *d
	doc.OwnerID = ownerID
	if doc.StorageKey == "" {
		key, ok := common.StorageKeyFromURL(doc.FileURL)
		if !ok {
			return nil, fmt.Errorf("%w: storage key is required", common.ErrorValidation)
		}
		doc.StorageKey = key
	}
	if err := storage.CheckOwnerKey(ownerID, doc.StorageKey); err != nil {
		return nil, err
	}
	if doc.FileURL == "" {
		doc.FileURL = s.blobs.PublicURL(doc.StorageKey)
	}
	if doc.FileType == "" {
		doc.FileType = common.DefaultContentType
	}

	return s.repomanager.Documents(s.db).Create(ctx, &doc)
}

// Delete removes the metadata row only. The blob is the caller's to remove.
func (s *DocumentsService) Delete(ctx context.Context, ownerID, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	return s.repomanager.Documents(s.db).Delete(ctx, ownerID, id)
}

// DownloadURL presigns a GET for the document's blob.
func (s *DocumentsService) DownloadURL(ctx context.Context, ownerID, id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	doc, err := s.repomanager.Documents(s.db).Get(ctx, ownerID, id)
	if err != nil {
		return "", err
	}
	key := doc.StorageKey
	if key == "" {
		var ok bool
		if key, ok = common.StorageKeyFromURL(doc.FileURL); !ok {
			return "", fmt.Errorf("document %s has no storage key", id)
		}
	}
	return s.blobs.PresignGet(ctx, key)
}
