// Package workspace is the view-model behind the authenticated notes area.
//
// It owns the note list, the selected note, the edit buffer, the selected
// note's documents, the search query, the loading/uploading flags and the
// last error. The last error lasts until the next successful store call. Local state changes only after the store acknowledges a write.
// Saved notes are spliced into the list from the returned row; documents are
// always refetched on selection.
package workspace

import (
	"context"
	"io"
	"strings"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/client/repositories/notes"
	"github.com/dmitrijs2005/plaintheory/internal/client/session"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
)

// Documents lists and deletes a note's attachments.
type Documents interface {
	ListForNote(ctx context.Context, noteID string) ([]models.Document, error)
	Delete(ctx context.Context, d models.Document) error
}

// Uploader runs the upload pipeline.
type Uploader interface {
	Run(ctx context.Context, ownerID, noteID string, f models.File) (*models.Document, error)
}

// Downloader streams a document's blob.
type Downloader interface {
	Download(ctx context.Context, documentID string, w io.Writer) (int64, error)
}

type ViewModel struct {
	session    *session.Session
	notes      notes.Repository
	docs       Documents
	uploader   Uploader
	downloader Downloader
	log        logging.Logger

	list      []models.Note
	selected  string
	editing   bool
	title     string
	content   string
	documents []models.Document
	search    string
	loading   bool
	uploading bool
	lastError string
}

func New(sess *session.Session, n notes.Repository, d Documents, u Uploader, dl Downloader, log logging.Logger) *ViewModel {
	return &ViewModel{
		session:    sess,
		notes:      n,
		docs:       d,
		uploader:   u,
		downloader: dl,
		log:        log.With("module", "workspace"),
		list:       []models.Note{},
		documents:  []models.Document{},
	}
}

func (vm *ViewModel) ctx(ctx context.Context) context.Context {
	return session.WithSession(ctx, vm.session)
}

func (vm *ViewModel) failure(ctx context.Context, action string, err error) error {
	msg := describe(action, err)
	vm.lastError = msg
	vm.log.Debug(ctx, "operation failed", "action", action, "error", err)
	return &Error{Message: msg, Err: err}
}

func (vm *ViewModel) indexOf(id string) int {
	for i, n := range vm.list {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Load fetches the note list and drops the selection when its note is gone.
func (vm *ViewModel) Load(ctx context.Context) error {
	vm.loading = true
	defer func() { vm.loading = false }()

	list, err := vm.notes.List(vm.ctx(ctx))
	if err != nil {
		return vm.failure(ctx, "Failed to load notes", err)
	}
	vm.list = list

	if vm.selected != "" && vm.indexOf(vm.selected) < 0 {
		vm.clearSelection()
	}
	vm.lastError = ""
	return nil
}

func (vm *ViewModel) clearSelection() {
	vm.selected = ""
	vm.editing = false
	vm.title, vm.content = "", ""
	vm.documents = []models.Document{}
}

// Selected returns the selected note, if it is still in the list.
func (vm *ViewModel) Selected() (models.Note, bool) {
	if vm.selected == "" {
		return models.Note{}, false
	}
	i := vm.indexOf(vm.selected)
	if i < 0 {
		return models.Note{}, false
	}
	return vm.list[i], true
}

// Select makes id the selected note, silently discarding any draft, and
// refetches its documents.
func (vm *ViewModel) Select(ctx context.Context, id string) error {
	if vm.indexOf(id) < 0 {
		return vm.failure(ctx, "Failed to open note", ErrUnknownNote)
	}
	vm.selected = id
	vm.editing = false
	vm.title, vm.content = "", ""
	vm.documents = []models.Document{}

	return vm.RefreshDocuments(ctx)
}

// RefreshDocuments refetches the selected note's documents.
func (vm *ViewModel) RefreshDocuments(ctx context.Context) error {
	n, ok := vm.Selected()
	if !ok {
		vm.documents = []models.Document{}
		return nil
	}
	docs, err := vm.docs.ListForNote(vm.ctx(ctx), n.ID)
	if err != nil {
		return vm.failure(ctx, "Failed to load documents", err)
	}
	vm.documents = docs
	vm.lastError = ""
	return nil
}

// CreateNote inserts a placeholder note, prepends it, selects it and enters
// editing with the buffer filled from the stored row.
func (vm *ViewModel) CreateNote(ctx context.Context) (*models.Note, error) {
	n, err := vm.notes.Create(vm.ctx(ctx), "", "")
	if err != nil {
		return nil, vm.failure(ctx, "Failed to create note", err)
	}
	vm.list = append([]models.Note{*n}, vm.list...)
	vm.selected = n.ID
	vm.documents = []models.Document{}
	vm.editing = true
	vm.title, vm.content = n.Title, n.Content
	vm.lastError = ""
	return n, nil
}

// BeginEdit fills the buffer from the selected note.
func (vm *ViewModel) BeginEdit() error {
	n, ok := vm.Selected()
	if !ok {
		return ErrNoSelection
	}
	vm.editing = true
	vm.title, vm.content = n.Title, n.Content
	return nil
}

func (vm *ViewModel) SetDraftTitle(title string) error {
	if !vm.editing {
		return ErrNotEditing
	}
	vm.title = title
	return nil
}

func (vm *ViewModel) SetDraftContent(content string) error {
	if !vm.editing {
		return ErrNotEditing
	}
	vm.content = content
	return nil
}

// Save persists the buffer and splices the returned row into the list in
// place.
func (vm *ViewModel) Save(ctx context.Context) error {
	n, ok := vm.Selected()
	if !ok {
		return vm.failure(ctx, "Failed to save note", ErrNoSelection)
	}
	if !vm.editing {
		return vm.failure(ctx, "Failed to save note", ErrNotEditing)
	}

	saved, err := vm.notes.Update(vm.ctx(ctx), n.ID, vm.title, vm.content)
	if err != nil {
		return vm.failure(ctx, "Failed to save note", err)
	}
	if i := vm.indexOf(saved.ID); i >= 0 {
		vm.list[i] = *saved
	}
	vm.selected = saved.ID
	vm.editing = false
	vm.lastError = ""
	return nil
}

// Cancel leaves editing and restores the buffer from the persisted note.
func (vm *ViewModel) Cancel() {
	vm.editing = false
	if n, ok := vm.Selected(); ok {
		vm.title, vm.content = n.Title, n.Content
	}
}

// DeleteNote removes id once the store confirms.
func (vm *ViewModel) DeleteNote(ctx context.Context, id string) error {
	if err := vm.notes.Delete(vm.ctx(ctx), id); err != nil {
		return vm.failure(ctx, "Failed to delete note", err)
	}
	if i := vm.indexOf(id); i >= 0 {
		vm.list = append(vm.list[:i:i], vm.list[i+1:]...)
	}
	if vm.selected == id {
		vm.clearSelection()
	}
	vm.lastError = ""
	return nil
}

func (vm *ViewModel) SetSearch(q string) { vm.search = q }

// Visible filters the full list by the search query, case-insensitively over
// title and content. An empty query returns the list unchanged.
func (vm *ViewModel) Visible() []models.Note {
	if vm.search == "" {
		return vm.list
	}
	q := strings.ToLower(vm.search)
	out := make([]models.Note, 0, len(vm.list))
	for _, n := range vm.list {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}
	return out
}

// Upload runs the pipeline for the selected note and prepends the stored
// document. The last error is cleared when the upload starts.
func (vm *ViewModel) Upload(ctx context.Context, f models.File) (*models.Document, error) {
	n, ok := vm.Selected()
	if !ok {
		return nil, vm.failure(ctx, "Failed to upload file", ErrNoSelection)
	}
	u, ok := vm.session.Identity()
	if !ok {
		return nil, vm.failure(ctx, "Failed to upload file", session.ErrNoIdentity)
	}

	vm.uploading = true
	vm.lastError = ""
	defer func() { vm.uploading = false }()

	doc, err := vm.uploader.Run(vm.ctx(ctx), u.ID, n.ID, f)
	if err != nil {
		return nil, vm.failure(ctx, "Failed to upload file", err)
	}
	vm.documents = append([]models.Document{*doc}, vm.documents...)
	return doc, nil
}

// DeleteDocument removes doc once both the blob and the row are gone.
func (vm *ViewModel) DeleteDocument(ctx context.Context, doc models.Document) error {
	if err := vm.docs.Delete(vm.ctx(ctx), doc); err != nil {
		return vm.failure(ctx, "Failed to delete document", err)
	}
	out := vm.documents[:0:0]
	for _, d := range vm.documents {
		if d.ID != doc.ID {
			out = append(out, d)
		}
	}
	vm.documents = out
	vm.lastError = ""
	return nil
}

// Download writes doc's content to w.
func (vm *ViewModel) Download(ctx context.Context, doc models.Document, w io.Writer) (int64, error) {
	n, err := vm.downloader.Download(vm.ctx(ctx), doc.ID, w)
	if err != nil {
		return n, vm.failure(ctx, "Failed to download file", err)
	}
	vm.lastError = ""
	return n, nil
}

func (vm *ViewModel) Notes() []models.Note { return vm.list }

func (vm *ViewModel) Documents() []models.Document { return vm.documents }

func (vm *ViewModel) Editing() bool { return vm.editing }

// Draft returns the edit buffer.
func (vm *ViewModel) Draft() (title, content string) { return vm.title, vm.content }

func (vm *ViewModel) Search() string { return vm.search }

func (vm *ViewModel) Loading() bool { return vm.loading }

func (vm *ViewModel) Uploading() bool { return vm.uploading }

func (vm *ViewModel) LastError() string { return vm.lastError }

func (vm *ViewModel) ClearError() { vm.lastError = "" }
