// Package models defines the client-side view of workspace entities.
package models

import (
	"io"
	"time"
)

// User is the authenticated identity returned by the auth service.
type User struct {
	ID          string
	Email       string
	ConfirmedAt *time.Time
	CreatedAt   time.Time
}

// Note is a persisted note as returned by the row store.
type Note struct {
	ID        string
	Title     string
	Content   string
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document is the metadata row of an uploaded attachment.
type Document struct {
	ID         string
	NoteID     string
	OwnerID    string
	FileName   string
	FileURL    string
	FileType   string
	FileSize   int64
	StorageKey string
	CreatedAt  time.Time
}

// File is a local file selected for upload. Size is checked before Content
// is read.
type File struct {
	Name    string
	Type    string
	Size    int64
	Content io.Reader
}
