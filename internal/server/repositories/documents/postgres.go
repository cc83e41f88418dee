package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/dbx"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const documentColumns = `id, note_id, owner_id, file_name, file_url, file_type, file_size, storage_key, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*models.Document, error) {
	d := &models.Document{}
	err := row.Scan(&d.ID, &d.NoteID, &d.OwnerID, &d.FileName, &d.FileURL,
		&d.FileType, &d.FileSize, &d.StorageKey, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *PostgresRepository) ListForNote(ctx context.Context, ownerID, noteID string) ([]*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents
		WHERE note_id = $1 AND owner_id = $2
		ORDER BY created_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Document, 0)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Create copies owner_id from the parent note; no row is produced when the
// note is missing or belongs to someone else.
func (r *PostgresRepository) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	query := `INSERT INTO documents (note_id, owner_id, file_name, file_url, file_type, file_size, storage_key)
		SELECT n.id, n.owner_id, $3, $4, $5, $6, $7
		FROM notes n
		WHERE n.id = $1 AND n.owner_id = $2
		RETURNING ` + documentColumns

	out, err := scanDocument(r.db.QueryRowContext(ctx, query,
		d.NoteID, d.OwnerID, d.FileName, d.FileURL, d.FileType, d.FileSize, d.StorageKey))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrorNotFound
		case dbx.IsCheckViolation(err):
			return nil, common.ErrFileTooLarge
		case dbx.IsForeignKeyViolation(err):
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents
		WHERE id = $1 AND owner_id = $2`

	d, err := scanDocument(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM documents WHERE id = $1 AND owner_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

func (r *PostgresRepository) StorageKeysForNote(ctx context.Context, ownerID, noteID string) ([]string, error) {
	query := `SELECT storage_key FROM documents
		WHERE note_id = $1 AND owner_id = $2 AND storage_key <> ''`

	rows, err := r.db.QueryContext(ctx, query, noteID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return keys, nil
}
