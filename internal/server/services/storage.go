package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/dmitrijs2005/plaintheory/internal/server/config"
	"github.com/dmitrijs2005/plaintheory/internal/server/storage"
)

// StorageService applies the bucket policy in front of the blob store.
type StorageService struct {
	blobs         storage.BlobStore
	log           logging.Logger
	maxUploadSize int64
}

func NewStorageService(blobs storage.BlobStore, log logging.Logger, cfg *config.Config) *StorageService {
	return &StorageService{
		blobs:         blobs,
		log:           log.With("module", "storage"),
		maxUploadSize: cfg.MaxUploadSize,
	}
}

func (s *StorageService) CreateUploadURL(ctx context.Context, ownerID, key, contentType string, size int64) (string, time.Time, error) {
	if err := storage.CheckOwnerKey(ownerID, key); err != nil {
		return "", time.Time{}, err
	}
	if size < 0 {
		return "", time.Time{}, fmt.Errorf("%w: negative size", common.ErrorValidation)
	}
	if size > s.maxUploadSize {
		return "", time.Time{}, common.ErrFileTooLarge
	}
	return s.blobs.PresignPut(ctx, key, contentType, size)
}

func (s *StorageService) PublicURL(key string) string {
	return s.blobs.PublicURL(key)
}

func (s *StorageService) Remove(ctx context.Context, ownerID, key string) error {
	if err := storage.CheckOwnerKey(ownerID, key); err != nil {
		return err
	}
	if err := s.blobs.Remove(ctx, key); err != nil {
		s.log.Error(ctx, "remove failed", "key", key, "error", err)
		return err
	}
	return nil
}
