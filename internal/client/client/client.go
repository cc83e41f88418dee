package client

import (
	"context"

	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/client/session"
)

// AuthAPI is the auth collaborator.
type AuthAPI interface {
	SignUp(ctx context.Context, email, password string) (confirmed bool, err error)
	ConfirmEmail(ctx context.Context, token string) error
	SignIn(ctx context.Context, email, password string) (*session.Session, *models.User, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
}

// NotesAPI is the row store's notes table.
type NotesAPI interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, title, content string) (*models.Note, error)
	GetNote(ctx context.Context, id string) (*models.Note, error)
	UpdateNote(ctx context.Context, id, title, content string) (*models.Note, error)
	DeleteNote(ctx context.Context, id string) error
}

// DocumentsAPI is the row store's documents table.
type DocumentsAPI interface {
	ListDocuments(ctx context.Context, noteID string) ([]models.Document, error)
	CreateDocument(ctx context.Context, d models.Document) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	DownloadURL(ctx context.Context, id string) (string, error)
}

// StorageAPI is the blob store.
type StorageAPI interface {
	CreateUploadURL(ctx context.Context, key, contentType string, size int64) (string, error)
	PublicURL(ctx context.Context, key string) (string, error)
	RemoveObject(ctx context.Context, key string) error
}

// Client is everything GRPCClient offers.
type Client interface {
	AuthAPI
	NotesAPI
	DocumentsAPI
	StorageAPI
	Close() error
}

var _ Client = (*GRPCClient)(nil)
