// Package users declares the account repository contract and its
// PostgreSQL implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/server/models"
)

type Repository interface {
	// Create inserts user and fills its ID and CreatedAt. A taken email
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Confirm marks the user holding tokenHash as confirmed and clears the
	// token so it cannot be replayed.
	Confirm(ctx context.Context, tokenHash string) (*models.User, error)
}
