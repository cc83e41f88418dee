package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/client/client"
	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/client/repositories/notes"
	"github.com/dmitrijs2005/plaintheory/internal/client/session"
	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"google.golang.org/grpc/codes"
)

var errBoom = errors.New("boom")

func notApplied(err error) error { return fmt.Errorf("%w: %w", common.ErrNotApplied, err) }

// fakeNotes behaves like the row store: updated_at strictly increases and
// List returns the most recently updated first.
type fakeNotes struct {
	notes.Repository

	rows  []models.Note
	clock time.Time
	seq   int
	err   error

	sawSession bool
}

func (f *fakeNotes) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeNotes) List(ctx context.Context) ([]models.Note, error) {
	_, f.sawSession = session.FromContext(ctx)
	if f.err != nil {
		return nil, notApplied(f.err)
	}
	return append([]models.Note{}, f.rows...), nil
}

func (f *fakeNotes) Create(_ context.Context, title, content string) (*models.Note, error) {
	if f.err != nil {
		return nil, notApplied(f.err)
	}
	if title == "" {
		title = common.UntitledNote
	}
	f.seq++
	now := f.tick()
	n := models.Note{ID: fmt.Sprintf("n%d", f.seq), Title: title, Content: content, OwnerID: "u1", CreatedAt: now, UpdatedAt: now}
	f.rows = append([]models.Note{n}, f.rows...)
	return &n, nil
}

func (f *fakeNotes) Update(_ context.Context, id, title, content string) (*models.Note, error) {
	if f.err != nil {
		return nil, notApplied(f.err)
	}
	for i, n := range f.rows {
		if n.ID == id {
			n.Title, n.Content, n.UpdatedAt = title, content, f.tick()
			f.rows[i] = n
			return &n, nil
		}
	}
	return nil, notApplied(&client.StatusError{Code: codes.NotFound, Message: "not found"})
}

func (f *fakeNotes) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return notApplied(f.err)
	}
	for i, n := range f.rows {
		if n.ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return notApplied(&client.StatusError{Code: codes.NotFound, Message: "not found"})
}

type fakeDocs struct {
	byNote    map[string][]models.Document
	listErr   error
	deleteErr error
	listCalls int
}

func (f *fakeDocs) ListForNote(_ context.Context, noteID string) ([]models.Document, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, notApplied(f.listErr)
	}
	return append([]models.Document{}, f.byNote[noteID]...), nil
}

func (f *fakeDocs) Delete(_ context.Context, d models.Document) error {
	if f.deleteErr != nil {
		return notApplied(f.deleteErr)
	}
	docs := f.byNote[d.NoteID]
	for i := range docs {
		if docs[i].ID == d.ID {
			f.byNote[d.NoteID] = append(docs[:i], docs[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUploader struct {
	doc   *models.Document
	err   error
	owner string
	note  string
}

func (f *fakeUploader) Run(_ context.Context, ownerID, noteID string, _ models.File) (*models.Document, error) {
	f.owner, f.note = ownerID, noteID
	return f.doc, f.err
}

type fakeDownloader struct {
	body string
	err  error
}

func (f fakeDownloader) Download(_ context.Context, _ string, w io.Writer) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := io.WriteString(w, f.body)
	return int64(n), err
}

type fixture struct {
	vm       *ViewModel
	notes    *fakeNotes
	docs     *fakeDocs
	uploader *fakeUploader
	session  *session.Session
}

func newFixture() *fixture {
	sess := session.New("a", "r")
	sess.BindIdentity(models.User{ID: "u1", Email: "e@x.io"})
	f := &fixture{
		notes:    &fakeNotes{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		docs:     &fakeDocs{byNote: map[string][]models.Document{}},
		uploader: &fakeUploader{},
		session:  sess,
	}
	f.vm = New(sess, f.notes, f.docs, f.uploader, fakeDownloader{body: "payload"}, logging.Nop{})
	return f
}
