package models

import "time"

// Document is the metadata row of a file attached to a note. The bytes live
// in the blob store under StorageKey.
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
