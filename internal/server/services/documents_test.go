package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocumentsService(t *testing.T, docs *fakeDocumentsRepo, blobs *fakeBlobs) *DocumentsService {
	t.Helper()
	db, _ := newSQLMockDB(t)
	t.Cleanup(func() { db.Close() })
	return NewDocumentsService(db, &fakeRepoManager{d: docs}, blobs, logging.Nop{}, testServerConfig())
}

func TestDocumentsService_CreateFillsDefaultsAndOwner(t *testing.T) {
	docs := &fakeDocumentsRepo{}
	s := newDocumentsService(t, docs, &fakeBlobs{})

	out, err := s.Create(context.Background(), "u1", &models.Document{
		NoteID:     noteID,
		OwnerID:    "someone-else",
		FileName:   "blob",
		FileSize:   10,
		StorageKey: "u1/abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.OwnerID)
	assert.Equal(t, common.DefaultContentType, out.FileType)
	assert.Equal(t, "http://blob/documents/u1/abc", out.FileURL)
}

func TestDocumentsService_CreateDerivesKeyFromURL(t *testing.T) {
	docs := &fakeDocumentsRepo{}
	s := newDocumentsService(t, docs, &fakeBlobs{})

	out, err := s.Create(context.Background(), "u1", &models.Document{
		NoteID:   noteID,
		FileName: "a.txt",
		FileURL:  "http://blob/documents/u1/k.txt",
		FileType: "text/plain",
	})
	require.NoError(t, err)
	assert.Equal(t, "u1/k.txt", out.StorageKey)
}

func TestDocumentsService_CreateRejects(t *testing.T) {
	s := newDocumentsService(t, &fakeDocumentsRepo{}, &fakeBlobs{})

	base := models.Document{NoteID: noteID, FileName: "a", StorageKey: "u1/a"}

	tests := []struct {
		name   string
		mutate func(d *models.Document)
		want   error
	}{
		{"bad note id", func(d *models.Document) { d.NoteID = "x" }, common.ErrorValidation},
		{"no name", func(d *models.Document) { d.FileName = "" }, common.ErrorValidation},
		{"too large", func(d *models.Document) { d.FileSize = common.MaxUploadSize + 1 }, common.ErrFileTooLarge},
		{"foreign key prefix", func(d *models.Document) { d.StorageKey = "u2/a" }, common.ErrorForbidden},
		{"no key at all", func(d *models.Document) { d.StorageKey = ""; d.FileURL = "" }, common.ErrorValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := base
			tt.mutate(&d)
			_, err := s.Create(context.Background(), "u1", &d)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDocumentsService_CreateAcceptsExactCeiling(t *testing.T) {
	s := newDocumentsService(t, &fakeDocumentsRepo{}, &fakeBlobs{})

	_, err := s.Create(context.Background(), "u1", &models.Document{
		NoteID: noteID, FileName: "big.bin", StorageKey: "u1/big.bin", FileSize: common.MaxUploadSize,
	})
	require.NoError(t, err)
}

func TestDocumentsService_DownloadURL(t *testing.T) {
	blobs := &fakeBlobs{}
	docs := &fakeDocumentsRepo{getOut: &models.Document{ID: noteID, FileURL: "http://blob/documents/u1/legacy.pdf"}}
	s := newDocumentsService(t, docs, blobs)

	url, err := s.DownloadURL(context.Background(), "u1", noteID)
	require.NoError(t, err)
	assert.Equal(t, "http://signed/get/u1/legacy.pdf", url)
	assert.Equal(t, "u1/legacy.pdf", blobs.getKey)

	docs.getErr = common.ErrorNotFound
	_, err = s.DownloadURL(context.Background(), "u1", noteID)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDocumentsService_DeleteRowOnly(t *testing.T) {
	docs := &fakeDocumentsRepo{}
	blobs := &fakeBlobs{}
	s := newDocumentsService(t, docs, blobs)

	require.NoError(t, s.Delete(context.Background(), "u1", noteID))
	assert.Equal(t, []string{noteID}, docs.deleted)
	assert.Empty(t, blobs.removed)
}
