package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/dbx"
	"github.com/dmitrijs2005/plaintheory/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const noteColumns = `id, owner_id, title, content, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*models.Note, error) {
	n := &models.Note{}
	if err := row.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
		return nil, err
	}
	return n, nil
}

func (r *PostgresRepository) List(ctx context.Context, ownerID string) ([]*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		WHERE owner_id = $1
		ORDER BY updated_at DESC, id`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, ownerID, title, content string) (*models.Note, error) {
	query := `INSERT INTO notes (owner_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING ` + noteColumns

	n, err := scanNote(r.db.QueryRowContext(ctx, query, ownerID, title, content))
	if err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) Get(ctx context.Context, ownerID, id string) (*models.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes
		WHERE id = $1 AND owner_id = $2`

	return r.one(r.db.QueryRowContext(ctx, query, id, ownerID))
}

// Update bumps updated_at by at least a microsecond, so two saves within the
// same clock tick still order correctly.
func (r *PostgresRepository) Update(ctx context.Context, ownerID, id, title, content string) (*models.Note, error) {
	query := `UPDATE notes
		SET title = $3, content = $4,
			updated_at = GREATEST(now(), updated_at + interval '1 microsecond')
		WHERE id = $1 AND owner_id = $2
		RETURNING ` + noteColumns

	return r.one(r.db.QueryRowContext(ctx, query, id, ownerID, title, content))
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

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

func (r *PostgresRepository) one(row *sql.Row) (*models.Note, error) {
	n, err := scanNote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
