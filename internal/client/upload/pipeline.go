// Package upload moves a local file into the blob store and records its
// metadata row.
//
// A run goes Idle → Validating → Uploading → WritingMetadata → Done, or ends
// in Failed from any stage. Oversized files fail before any network call.
// When the metadata write fails after the blob was stored the blob is left
// in place and logged; nothing is rolled back.
package upload

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
)

// BlobWriter stores bytes and resolves their public URL.
type BlobWriter interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
	PublicURL(ctx context.Context, key string) (string, error)
}

// MetadataWriter inserts the document row.
type MetadataWriter interface {
	Create(ctx context.Context, d models.Document) (*models.Document, error)
}

type Pipeline struct {
	blobs     BlobWriter
	docs      MetadataWriter
	log       logging.Logger
	maxSize   int64
	observers []Observer

	mu    sync.Mutex
	stage Stage
}

func New(blobs BlobWriter, docs MetadataWriter, log logging.Logger) *Pipeline {
	return &Pipeline{
		blobs:   blobs,
		docs:    docs,
		log:     log.With("module", "upload"),
		maxSize: common.MaxUploadSize,
	}
}

// Observe registers o for all later runs.
func (p *Pipeline) Observe(o Observer) {
	p.observers = append(p.observers, o)
}

// Stage reports where the last run is (or ended).
func (p *Pipeline) Stage() Stage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stage
}

func (p *Pipeline) enter(s Stage, key string, f *Failure) {
	p.mu.Lock()
	p.stage = s
	p.mu.Unlock()
	for _, o := range p.observers {
		o(Event{Stage: s, Key: key, Failure: f})
	}
}

func (p *Pipeline) fail(key string, reason Reason, err error) error {
	f := &Failure{Reason: reason, Err: err}
	p.enter(Failed, key, f)
	return f
}

// Run uploads f as an attachment of noteID owned by ownerID and returns the
// stored document row. Errors are always *Failure.
func (p *Pipeline) Run(ctx context.Context, ownerID, noteID string, f models.File) (*models.Document, error) {
	p.enter(Validating, "", nil)

	if f.Size > p.maxSize {
		return nil, p.fail("", ReasonSizeExceeded, common.ErrFileTooLarge)
	}
	if ownerID == "" {
		return nil, p.fail("", ReasonUploadError, common.ErrorUnauthorized)
	}
	if f.Name == "" {
		return nil, p.fail("", ReasonUploadError, fmt.Errorf("%w: file name is required", common.ErrorValidation))
	}

	var data []byte
	if f.Content != nil {
		var err error
		data, err = io.ReadAll(io.LimitReader(f.Content, p.maxSize+1))
		if err != nil {
			return nil, p.fail("", ReasonUploadError, fmt.Errorf("read %s: %w", f.Name, err))
		}
	}
	if int64(len(data)) > p.maxSize {
		return nil, p.fail("", ReasonSizeExceeded, common.ErrFileTooLarge)
	}

	key := ObjectKey(ownerID, f.Name)
	contentType := ContentType(f.Name, f.Type)

	p.enter(Uploading, key, nil)
	if err := p.blobs.Upload(ctx, key, contentType, data); err != nil {
		return nil, p.fail(key, ReasonUploadError, err)
	}
	url, err := p.blobs.PublicURL(ctx, key)
	if err != nil {
		return nil, p.fail(key, ReasonUploadError, err)
	}

	p.enter(WritingMetadata, key, nil)
	doc, err := p.docs.Create(ctx, models.Document{
		NoteID:     noteID,
		OwnerID:    ownerID,
		FileName:   f.Name,
		FileURL:    url,
		FileType:   contentType,
		FileSize:   int64(len(data)),
		StorageKey: key,
	})
	if err != nil {
		p.log.Warn(ctx, "orphaned blob", "key", key, "note_id", noteID, "error", err)
		return nil, p.fail(key, ReasonDBError, err)
	}

	p.enter(Done, key, nil)
	return doc, nil
}
