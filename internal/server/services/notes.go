package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/dbx"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/plaintheory/internal/server/storage"
	"github.com/google/uuid"
)

type NotesService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	blobs       storage.BlobStore
	log         logging.Logger
}

func NewNotesService(db *sql.DB, m repomanager.RepositoryManager, blobs storage.BlobStore, log logging.Logger) *NotesService {
	return &NotesService{
		db:          db,
		repomanager: m,
		blobs:       blobs,
		log:         log.With("module", "notes"),
	}
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id %q", common.ErrorValidation, id)
	}
	return nil
}

func (s *NotesService) List(ctx context.Context, ownerID string) ([]*models.Note, error) {
	return s.repomanager.Notes(s.db).List(ctx, ownerID)
}

// Create stores a new note. An empty title becomes the placeholder title.
func (s *NotesService) Create(ctx context.Context, ownerID, title, content string) (*models.Note, error) {
	if title == "" {
		title = common.UntitledNote
	}
	return s.repomanager.Notes(s.db).Create(ctx, ownerID, title, content)
}

func (s *NotesService) Get(ctx context.Context, ownerID, id string) (*models.Note, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repomanager.Notes(s.db).Get(ctx, ownerID, id)
}

func (s *NotesService) Update(ctx context.Context, ownerID, id, title, content string) (*models.Note, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	return s.repomanager.Notes(s.db).Update(ctx, ownerID, id, title, content)
}

// Delete removes the note; its documents go with it through the foreign key.
// Their blobs are removed after commit, and a failed removal only logs.
func (s *NotesService) Delete(ctx context.Context, ownerID, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	var keys []string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		keys, err = s.repomanager.Documents(tx).StorageKeysForNote(ctx, ownerID, id)
		if err != nil {
			return err
		}
		return s.repomanager.Notes(tx).Delete(ctx, ownerID, id)
	})
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := s.blobs.Remove(ctx, key); err != nil {
			s.log.Warn(ctx, "orphaned blob", "note_id", id, "key", key, "error", err)
		}
	}
	return nil
}
