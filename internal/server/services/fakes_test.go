package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/plaintheory/internal/cryptox"
	"github.com/dmitrijs2005/plaintheory/internal/dbx"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	documentsrepo "github.com/dmitrijs2005/plaintheory/internal/server/repositories/documents"
	notesrepo "github.com/dmitrijs2005/plaintheory/internal/server/repositories/notes"
	refreshtokensrepo "github.com/dmitrijs2005/plaintheory/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/plaintheory/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	cryptox.PasswordCost = bcrypt.MinCost
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	u usersrepo.Repository
	r refreshtokensrepo.Repository
	n notesrepo.Repository
	d documentsrepo.Repository
}

func (m *fakeRepoManager) Users(dbx.DBTX) usersrepo.Repository                 { return m.u }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokensrepo.Repository { return m.r }
func (m *fakeRepoManager) Notes(dbx.DBTX) notesrepo.Repository                 { return m.n }
func (m *fakeRepoManager) Documents(dbx.DBTX) documentsrepo.Repository         { return m.d }

type fakeUsersRepo struct {
	usersrepo.Repository

	created   *models.User
	createErr error

	byEmail    *models.User
	byEmailErr error

	byID      *models.User
	byIDErr   error
	byIDCalls int

	confirmHash string
	confirmOut  *models.User
	confirmErr  error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *u
	out.ID = "u1"
	out.CreatedAt = time.Now()
	f.created = &out
	return &out, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmail, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	f.byIDCalls++
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeUsersRepo) Confirm(ctx context.Context, tokenHash string) (*models.User, error) {
	f.confirmHash = tokenHash
	if f.confirmErr != nil {
		return nil, f.confirmErr
	}
	return f.confirmOut, nil
}

type fakeRefreshRepo struct {
	findOut *models.RefreshToken
	findErr error

	delErr  error
	deleted []string

	createErr error
	created   []string

	deletedForUser string
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID string, tokenHash string, validity time.Duration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, tokenHash)
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, tokenHash string) error {
	if f.delErr != nil {
		return f.delErr
	}
	f.deleted = append(f.deleted, tokenHash)
	return nil
}

func (f *fakeRefreshRepo) DeleteForUser(ctx context.Context, userID string) (int64, error) {
	f.deletedForUser = userID
	return 2, nil
}

type fakeNotesRepo struct {
	notesrepo.Repository

	createdTitle string
	out          *models.Note
	err          error

	deleted []string
}

func (f *fakeNotesRepo) List(ctx context.Context, ownerID string) ([]*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*models.Note{f.out}, nil
}

func (f *fakeNotesRepo) Create(ctx context.Context, ownerID, title, content string) (*models.Note, error) {
	f.createdTitle = title
	if f.err != nil {
		return nil, f.err
	}
	return &models.Note{ID: "n1", OwnerID: ownerID, Title: title, Content: content}, nil
}

func (f *fakeNotesRepo) Get(ctx context.Context, ownerID, id string) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeNotesRepo) Update(ctx context.Context, ownerID, id, title, content string) (*models.Note, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Note{ID: id, OwnerID: ownerID, Title: title, Content: content}, nil
}

func (f *fakeNotesRepo) Delete(ctx context.Context, ownerID, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeDocumentsRepo struct {
	documentsrepo.Repository

	keys    []string
	keysErr error

	created   *models.Document
	createErr error

	getOut *models.Document
	getErr error

	deleted []string
}

func (f *fakeDocumentsRepo) ListForNote(ctx context.Context, ownerID, noteID string) ([]*models.Document, error) {
	return []*models.Document{}, nil
}

func (f *fakeDocumentsRepo) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *d
	out.ID = "d1"
	f.created = &out
	return &out, nil
}

func (f *fakeDocumentsRepo) Get(ctx context.Context, ownerID, id string) (*models.Document, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeDocumentsRepo) Delete(ctx context.Context, ownerID, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeDocumentsRepo) StorageKeysForNote(ctx context.Context, ownerID, noteID string) ([]string, error) {
	if f.keysErr != nil {
		return nil, f.keysErr
	}
	return f.keys, nil
}

type fakeBlobs struct {
	removed   []string
	removeErr map[string]error

	putKey, putType string
	putSize         int64
	putErr          error

	getKey string
}

func (f *fakeBlobs) PresignPut(ctx context.Context, key, contentType string, size int64) (string, time.Time, error) {
	if f.putErr != nil {
		return "", time.Time{}, f.putErr
	}
	f.putKey, f.putType, f.putSize = key, contentType, size
	return "http://signed/put/" + key, time.Now().Add(time.Minute), nil
}

func (f *fakeBlobs) PresignGet(ctx context.Context, key string) (string, error) {
	f.getKey = key
	return "http://signed/get/" + key, nil
}

func (f *fakeBlobs) PublicURL(key string) string {
	return "http://blob/documents/" + key
}

func (f *fakeBlobs) Remove(ctx context.Context, key string) error {
	if err := f.removeErr[key]; err != nil {
		return err
	}
	f.removed = append(f.removed, key)
	return nil
}
