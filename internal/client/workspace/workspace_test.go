package workspace

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/plaintheory/internal/client/client"
	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/client/upload"
	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

func TestLoad(t *testing.T) {
	f := newFixture()
	f.notes.rows = []models.Note{{ID: "n2"}, {ID: "n1"}}

	require.NoError(t, f.vm.Load(context.Background()))
	assert.Len(t, f.vm.Notes(), 2)
	assert.False(t, f.vm.Loading())
	assert.True(t, f.notes.sawSession, "calls carry the session")
}

func TestLoad_DropsStaleSelection(t *testing.T) {
	f := newFixture()
	f.notes.rows = []models.Note{{ID: "n1"}}
	f.docs.byNote["n1"] = []models.Document{{ID: "d1", NoteID: "n1"}}
	ctx := context.Background()

	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))
	require.Len(t, f.vm.Documents(), 1)

	f.notes.rows = nil
	require.NoError(t, f.vm.Load(ctx))
	_, ok := f.vm.Selected()
	assert.False(t, ok)
	assert.Empty(t, f.vm.Documents())
}

func TestLoad_FailureKeepsState(t *testing.T) {
	f := newFixture()
	f.notes.rows = []models.Note{{ID: "n1"}}
	require.NoError(t, f.vm.Load(context.Background()))

	f.notes.err = errBoom
	err := f.vm.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotApplied)
	assert.Equal(t, "Failed to load notes: boom", f.vm.LastError())
	assert.Equal(t, err.Error(), f.vm.LastError())
	assert.Len(t, f.vm.Notes(), 1)
}

func TestSelect_DiscardsDraftAndRefetches(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1", Title: "A"}, {ID: "n2", Title: "B"}}
	require.NoError(t, f.vm.Load(ctx))

	require.NoError(t, f.vm.Select(ctx, "n1"))
	require.NoError(t, f.vm.BeginEdit())
	require.NoError(t, f.vm.SetDraftTitle("changed"))

	require.NoError(t, f.vm.Select(ctx, "n2"))
	assert.False(t, f.vm.Editing())
	assert.Equal(t, "B", f.notes.rows[1].Title)
	assert.Equal(t, "A", f.notes.rows[0].Title, "draft never persisted")

	require.NoError(t, f.vm.Select(ctx, "n2"))
	assert.Equal(t, 3, f.docs.listCalls, "documents refetched on every selection")

	require.ErrorIs(t, f.vm.Select(ctx, "nope"), ErrUnknownNote)
}

func TestCreateNote(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "old"}}
	require.NoError(t, f.vm.Load(ctx))

	n, err := f.vm.CreateNote(ctx)
	require.NoError(t, err)

	assert.Equal(t, n.ID, f.vm.Notes()[0].ID, "prepended")
	sel, ok := f.vm.Selected()
	require.True(t, ok)
	assert.Equal(t, n.ID, sel.ID)
	assert.True(t, f.vm.Editing())
	title, content := f.vm.Draft()
	assert.Equal(t, common.UntitledNote, title)
	assert.Empty(t, content)

	f.notes.err = errBoom
	_, err = f.vm.CreateNote(ctx)
	require.Error(t, err)
	assert.Len(t, f.vm.Notes(), 2)
}

func TestSave_SplicesInPlace(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1", Title: "A"}, {ID: "n2", Title: "B"}}
	require.NoError(t, f.vm.Load(ctx))

	require.NoError(t, f.vm.Select(ctx, "n2"))
	require.NoError(t, f.vm.BeginEdit())
	require.NoError(t, f.vm.SetDraftTitle("B2"))
	require.NoError(t, f.vm.SetDraftContent("body"))
	require.NoError(t, f.vm.Save(ctx))

	assert.False(t, f.vm.Editing())
	list := f.vm.Notes()
	assert.Equal(t, "n1", list[0].ID)
	assert.Equal(t, "B2", list[1].Title)
	assert.Equal(t, "body", list[1].Content)
	sel, _ := f.vm.Selected()
	assert.Equal(t, "B2", sel.Title)
}

func TestSave_FailureKeepsEditing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1", Title: "A"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))
	require.NoError(t, f.vm.BeginEdit())
	require.NoError(t, f.vm.SetDraftTitle("A2"))

	f.notes.err = &client.StatusError{Code: codes.Internal, Message: "internal error"}
	err := f.vm.Save(ctx)
	require.Error(t, err)
	assert.Equal(t, "Failed to save note: internal error", f.vm.LastError())
	assert.True(t, f.vm.Editing())
	sel, _ := f.vm.Selected()
	assert.Equal(t, "A", sel.Title)
}

func TestSave_SuccessClearsPreviousError(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1", Title: "A"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))
	require.NoError(t, f.vm.BeginEdit())

	f.notes.err = &client.StatusError{Code: codes.Internal, Message: "internal error"}
	require.Error(t, f.vm.Save(ctx))
	require.NotEmpty(t, f.vm.LastError())

	f.notes.err = nil
	require.NoError(t, f.vm.Save(ctx))
	assert.Empty(t, f.vm.LastError())
}

func TestClearError(t *testing.T) {
	f := newFixture()
	f.notes.err = errors.New("boom")
	require.Error(t, f.vm.Load(context.Background()))
	require.NotEmpty(t, f.vm.LastError())

	f.vm.ClearError()
	assert.Empty(t, f.vm.LastError())
}

func TestSave_RequiresEditing(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	require.ErrorIs(t, f.vm.Save(ctx), ErrNoSelection)

	f.notes.rows = []models.Note{{ID: "n1"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))
	require.ErrorIs(t, f.vm.Save(ctx), ErrNotEditing)
	require.ErrorIs(t, f.vm.SetDraftTitle("x"), ErrNotEditing)
	require.ErrorIs(t, f.vm.SetDraftContent("x"), ErrNotEditing)
}

func TestCancel_RestoresBuffer(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1", Title: "A", Content: "a"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))
	require.NoError(t, f.vm.BeginEdit())
	require.NoError(t, f.vm.SetDraftTitle("zzz"))

	f.vm.Cancel()
	assert.False(t, f.vm.Editing())
	title, content := f.vm.Draft()
	assert.Equal(t, "A", title)
	assert.Equal(t, "a", content)
}

func TestDeleteNote(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1"}, {ID: "n2"}}
	f.docs.byNote["n1"] = []models.Document{{ID: "d1", NoteID: "n1"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))

	f.notes.err = errBoom
	require.Error(t, f.vm.DeleteNote(ctx, "n1"))
	assert.Len(t, f.vm.Notes(), 2, "kept until the store confirms")

	f.notes.err = nil
	require.NoError(t, f.vm.DeleteNote(ctx, "n1"))
	require.Len(t, f.vm.Notes(), 1)
	assert.Equal(t, "n2", f.vm.Notes()[0].ID)
	_, ok := f.vm.Selected()
	assert.False(t, ok)
	assert.Empty(t, f.vm.Documents())
}

func TestSearch(t *testing.T) {
	f := newFixture()
	f.notes.rows = []models.Note{{ID: "1", Title: "Alpha", Content: "beta"}, {ID: "2", Title: "Gamma", Content: "delta"}}
	require.NoError(t, f.vm.Load(context.Background()))

	f.vm.SetSearch("bet")
	got := f.vm.Visible()
	require.Len(t, got, 1)
	assert.Equal(t, "Alpha", got[0].Title)

	f.vm.SetSearch("GAM")
	require.Len(t, f.vm.Visible(), 1)

	f.vm.SetSearch("")
	got = f.vm.Visible()
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Title)
	assert.Equal(t, "Gamma", got[1].Title)
	assert.Len(t, f.vm.Notes(), 2, "filter never mutates the list")
}

func TestUpload(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1"}}
	f.docs.byNote["n1"] = []models.Document{{ID: "old", NoteID: "n1"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))

	f.vm.lastError = "stale"
	f.uploader.doc = &models.Document{ID: "new", NoteID: "n1"}
	doc, err := f.vm.Upload(ctx, models.File{Name: "a.txt"})
	require.NoError(t, err)
	assert.Equal(t, "new", doc.ID)
	assert.Equal(t, "u1", f.uploader.owner)
	assert.Equal(t, "n1", f.uploader.note)
	assert.Equal(t, "new", f.vm.Documents()[0].ID)
	assert.Empty(t, f.vm.LastError())
	assert.False(t, f.vm.Uploading())
}

func TestUpload_Failures(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.vm.Upload(ctx, models.File{Name: "a"})
	require.ErrorIs(t, err, ErrNoSelection)

	f.notes.rows = []models.Note{{ID: "n1"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))

	f.uploader.err = &upload.Failure{Reason: upload.ReasonSizeExceeded, Err: common.ErrFileTooLarge}
	_, err = f.vm.Upload(ctx, models.File{Name: "big"})
	require.Error(t, err)
	assert.Equal(t, "File size must be less than 10MB", f.vm.LastError())
	assert.Empty(t, f.vm.Documents())

	f.uploader.err = &upload.Failure{Reason: upload.ReasonUploadError, Err: errors.New("upload failed: 403 Forbidden")}
	_, err = f.vm.Upload(ctx, models.File{Name: "a"})
	var fail *upload.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, "Failed to upload file: upload failed: 403 Forbidden", f.vm.LastError())
}

func TestUpload_NoIdentity(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))

	f.session.Invalidate()
	_, err := f.vm.Upload(ctx, models.File{Name: "a"})
	require.Error(t, err)
	assert.Empty(t, f.uploader.note)
}

func TestDeleteDocument(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.notes.rows = []models.Note{{ID: "n1"}}
	f.docs.byNote["n1"] = []models.Document{{ID: "d1", NoteID: "n1"}, {ID: "d2", NoteID: "n1"}}
	require.NoError(t, f.vm.Load(ctx))
	require.NoError(t, f.vm.Select(ctx, "n1"))

	f.docs.deleteErr = errBoom
	require.Error(t, f.vm.DeleteDocument(ctx, models.Document{ID: "d1", NoteID: "n1"}))
	assert.Len(t, f.vm.Documents(), 2)

	f.docs.deleteErr = nil
	require.NoError(t, f.vm.DeleteDocument(ctx, models.Document{ID: "d1", NoteID: "n1"}))
	require.Len(t, f.vm.Documents(), 1)
	assert.Equal(t, "d2", f.vm.Documents()[0].ID)
}

func TestDownload(t *testing.T) {
	f := newFixture()
	var buf bytes.Buffer
	n, err := f.vm.Download(context.Background(), models.Document{ID: "d1"}, &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", buf.String())
}

func TestScenario_CreateEditSave(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.vm.Load(ctx))
	created, err := f.vm.CreateNote(ctx)
	require.NoError(t, err)

	require.NoError(t, f.vm.SetDraftTitle("Draft"))
	require.NoError(t, f.vm.SetDraftContent("Hello"))
	require.NoError(t, f.vm.Save(ctx))

	sel, ok := f.vm.Selected()
	require.True(t, ok)
	assert.Equal(t, "Draft", sel.Title)
	assert.Equal(t, "Hello", sel.Content)
	assert.True(t, sel.UpdatedAt.After(created.CreatedAt))
	assert.Equal(t, "u1", sel.OwnerID)
}
