package users

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (email, password_hash, confirmation_token_hash, confirmed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	var tokenHash sql.NullString
	if user.ConfirmationTokenHash != "" {
		tokenHash = sql.NullString{String: user.ConfirmationTokenHash, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, tokenHash, user.ConfirmedAt).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

const selectUser = `SELECT id, email, password_hash, confirmed_at, created_at FROM users`

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE email = $1`, email)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *PostgresRepository) Confirm(ctx context.Context, tokenHash string) (*models.User, error) {
	query := `
		UPDATE users SET confirmed_at = now(), confirmation_token_hash = NULL
		WHERE confirmation_token_hash = $1
		RETURNING id, email, password_hash, confirmed_at, created_at
	`
	return r.getOne(ctx, query, tokenHash)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var confirmedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &confirmedAt, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if confirmedAt.Valid {
		t := confirmedAt.Time
		user.ConfirmedAt = &t
	}

	return user, nil
}
