package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"github.com/dmitrijs2005/plaintheory/internal/server/services"
)

type fakeUsers struct {
	UserService

	signUpOut *models.User
	signInOut *services.TokenPair
	refresh   *services.TokenPair
	user      *models.User
	err       error

	signedOut string
}

func (f *fakeUsers) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	return f.signUpOut, f.err
}

func (f *fakeUsers) ConfirmEmail(ctx context.Context, token string) (*models.User, error) {
	return f.user, f.err
}

func (f *fakeUsers) SignIn(ctx context.Context, email, password string) (*services.TokenPair, *models.User, error) {
	return f.signInOut, f.user, f.err
}

func (f *fakeUsers) SignOut(ctx context.Context, userID, refreshToken string) error {
	f.signedOut = userID
	return f.err
}

func (f *fakeUsers) RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error) {
	return f.refresh, f.err
}

func (f *fakeUsers) GetUser(ctx context.Context, userID string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: userID, Email: "a@b.c"}, nil
}

type fakeNotes struct {
	NotesService

	notes []*models.Note
	err   error

	owner string
}

func (f *fakeNotes) List(ctx context.Context, ownerID string) ([]*models.Note, error) {
	f.owner = ownerID
	return f.notes, f.err
}

func (f *fakeNotes) Create(ctx context.Context, ownerID, title, content string) (*models.Note, error) {
	f.owner = ownerID
	if f.err != nil {
		return nil, f.err
	}
	now := time.Now()
	return &models.Note{ID: "n1", OwnerID: ownerID, Title: title, Content: content, CreatedAt: now, UpdatedAt: now}, nil
}

func (f *fakeNotes) Update(ctx context.Context, ownerID, id, title, content string) (*models.Note, error) {
	f.owner = ownerID
	if f.err != nil {
		return nil, f.err
	}
	return &models.Note{ID: id, OwnerID: ownerID, Title: title, Content: content}, nil
}

func (f *fakeNotes) Delete(ctx context.Context, ownerID, id string) error {
	f.owner = ownerID
	return f.err
}

type fakeDocuments struct {
	DocumentsService

	created *models.Document
	err     error
}

func (f *fakeDocuments) Create(ctx context.Context, ownerID string, d *models.Document) (*models.Document, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *d
	out.ID = "d1"
	out.OwnerID = ownerID
	f.created = &out
	return &out, nil
}

func (f *fakeDocuments) List(ctx context.Context, ownerID, noteID string) ([]*models.Document, error) {
	return []*models.Document{{ID: "d1", NoteID: noteID, OwnerID: ownerID}}, f.err
}

func (f *fakeDocuments) DownloadURL(ctx context.Context, ownerID, id string) (string, error) {
	return "http://signed/" + id, f.err
}

type fakeStorage struct {
	StorageService
	err error
}

func (f *fakeStorage) CreateUploadURL(ctx context.Context, ownerID, key, contentType string, size int64) (string, time.Time, error) {
	return "http://signed/put/" + key, time.Unix(100, 0).UTC(), f.err
}

func (f *fakeStorage) PublicURL(key string) string { return "http://blob/documents/" + key }

func (f *fakeStorage) Remove(ctx context.Context, ownerID, key string) error { return f.err }

const testSecret = "secret"

func newTestServer() (*GRPCServer, *fakeUsers, *fakeNotes, *fakeDocuments, *fakeStorage) {
	u, n, d, st := &fakeUsers{}, &fakeNotes{}, &fakeDocuments{}, &fakeStorage{}
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, u, n, d, st, testSecret), u, n, d, st
}
