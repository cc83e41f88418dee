package documents

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var docCols = []string{"id", "note_id", "owner_id", "file_name", "file_url", "file_type", "file_size", "storage_key", "created_at"}

func sampleDoc() *models.Document {
	return &models.Document{
		NoteID:     "n1",
		OwnerID:    "u1",
		FileName:   "report.pdf",
		FileURL:    "http://blob/documents/u1/abc.pdf",
		FileType:   "application/pdf",
		FileSize:   2048,
		StorageKey: "u1/abc.pdf",
	}
}

func TestCreate_OwnershipJoin(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	in := sampleDoc()
	mock.ExpectQuery(`(?s)^INSERT\s+INTO\s+documents.*SELECT\s+n\.id,\s*n\.owner_id.*FROM\s+notes\s+n\s+WHERE\s+n\.id\s*=\s*\$1\s+AND\s+n\.owner_id\s*=\s*\$2\s+RETURNING`).
		WithArgs("n1", "u1", "report.pdf", in.FileURL, "application/pdf", int64(2048), "u1/abc.pdf").
		WillReturnRows(sqlmock.NewRows(docCols).
			AddRow("d1", "n1", "u1", "report.pdf", in.FileURL, "application/pdf", int64(2048), "u1/abc.pdf", now))

	got, err := repo.Create(context.Background(), in)
	require.NoError(t, err)

	want := *in
	want.ID = "d1"
	want.CreatedAt = now
	if diff := cmp.Diff(&want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{"foreign note", sql.ErrNoRows, common.ErrorNotFound},
		{"size check", &pgconn.PgError{Code: "23514"}, common.ErrFileTooLarge},
		{"fk race", &pgconn.PgError{Code: "23503"}, common.ErrorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newRepoWithMock(t)
			defer db.Close()

			mock.ExpectQuery(`INSERT\s+INTO\s+documents`).WillReturnError(tt.err)

			_, err := repo.Create(context.Background(), sampleDoc())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+documents`).WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), sampleDoc())
	require.EqualError(t, err, "db error: boom")
}

func TestListForNote(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`(?s)FROM\s+documents\s+WHERE\s+note_id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2\s+ORDER\s+BY\s+created_at\s+DESC`).
		WithArgs("n1", "u1").
		WillReturnRows(sqlmock.NewRows(docCols).
			AddRow("d2", "n1", "u1", "b.txt", "url-b", "text/plain", int64(3), "u1/b.txt", now).
			AddRow("d1", "n1", "u1", "a.txt", "url-a", "text/plain", int64(1), "u1/a.txt", now.Add(-time.Second)))

	got, err := repo.ListForNote(context.Background(), "u1", "n1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "d2", got[0].ID)
	assert.Equal(t, int64(1), got[1].FileSize)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM\s+documents\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2`).
		WithArgs("d1", "u2").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "u2", "d1")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+documents\s+WHERE\s+id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2$`).
		WithArgs("d1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE\s+FROM\s+documents`).
		WithArgs("d1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "u1", "d1"))
	require.ErrorIs(t, repo.Delete(context.Background(), "u1", "d1"), common.ErrorNotFound)
}

func TestStorageKeysForNote_SkipsEmpty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+storage_key\s+FROM\s+documents\s+WHERE\s+note_id\s*=\s*\$1\s+AND\s+owner_id\s*=\s*\$2\s+AND\s+storage_key\s*<>\s*''`).
		WithArgs("n1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"storage_key"}).AddRow("u1/a.txt").AddRow("u1/b.png"))

	keys, err := repo.StorageKeysForNote(context.Background(), "u1", "n1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1/a.txt", "u1/b.png"}, keys)
}
