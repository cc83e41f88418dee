package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/plaintheory/internal/dbx"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/documents"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/notes"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/plaintheory/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same code
// runs inside or outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Notes(db dbx.DBTX) notes.Repository
	Documents(db dbx.DBTX) documents.Repository
}
