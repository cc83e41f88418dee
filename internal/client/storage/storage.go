// Package storage is the workspace's blob store adapter. Bytes never pass
// through the backend: the backend signs URLs and the client transfers the
// object directly with package netx.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/plaintheory/internal/client/client"
	"github.com/dmitrijs2005/plaintheory/internal/netx"
)

// Package-level seams for tests.
var (
	uploadToPresignedURL     = netx.UploadToPresignedURL
	downloadFromPresignedURL = netx.DownloadFromPresignedURL
)

// Downloader resolves a signed GET URL for a document.
type Downloader interface {
	DownloadURL(ctx context.Context, documentID string) (string, error)
}

type Store struct {
	api  client.StorageAPI
	docs Downloader
}

func NewStore(api client.StorageAPI, docs Downloader) *Store {
	return &Store{api: api, docs: docs}
}

// Upload writes data under key. The server checks that key belongs to the
// caller and that the size is within limits before signing.
func (s *Store) Upload(ctx context.Context, key, contentType string, data []byte) error {
	url, err := s.api.CreateUploadURL(ctx, key, contentType, int64(len(data)))
	if err != nil {
		return err
	}
	if err := uploadToPresignedURL(ctx, url, contentType, data); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

func (s *Store) PublicURL(ctx context.Context, key string) (string, error) {
	return s.api.PublicURL(ctx, key)
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.api.RemoveObject(ctx, key)
}

// Download streams the document's blob into w.
func (s *Store) Download(ctx context.Context, documentID string, w io.Writer) (int64, error) {
	url, err := s.docs.DownloadURL(ctx, documentID)
	if err != nil {
		return 0, err
	}
	n, err := downloadFromPresignedURL(ctx, url, w)
	if err != nil {
		return n, fmt.Errorf("download %s: %w", documentID, err)
	}
	return n, nil
}
