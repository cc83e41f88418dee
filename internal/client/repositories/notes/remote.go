package notes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/plaintheory/internal/client/client"
	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/common"
)

// RemoteRepository implements Repository over the backend API.
type RemoteRepository struct {
	api client.NotesAPI
}

func NewRemoteRepository(api client.NotesAPI) *RemoteRepository {
	return &RemoteRepository{api: api}
}

func notApplied(err error) error {
	return fmt.Errorf("%w: %w", common.ErrNotApplied, err)
}

func (r *RemoteRepository) List(ctx context.Context) ([]models.Note, error) {
	notes, err := r.api.ListNotes(ctx)
	if err != nil {
		return nil, notApplied(err)
	}
	if notes == nil {
		notes = []models.Note{}
	}
	return notes, nil
}

func (r *RemoteRepository) Create(ctx context.Context, title, content string) (*models.Note, error) {
	if title == "" {
		title = common.UntitledNote
	}
	n, err := r.api.CreateNote(ctx, title, content)
	if err != nil {
		return nil, notApplied(err)
	}
	return n, nil
}

func (r *RemoteRepository) Get(ctx context.Context, id string) (*models.Note, error) {
	n, err := r.api.GetNote(ctx, id)
	if err != nil {
		return nil, notApplied(err)
	}
	return n, nil
}

func (r *RemoteRepository) Update(ctx context.Context, id, title, content string) (*models.Note, error) {
	n, err := r.api.UpdateNote(ctx, id, title, content)
	if err != nil {
		return nil, notApplied(err)
	}
	return n, nil
}

func (r *RemoteRepository) Delete(ctx context.Context, id string) error {
	if err := r.api.DeleteNote(ctx, id); err != nil {
		return notApplied(err)
	}
	return nil
}
