package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/plaintheory/internal/common"
	"github.com/dmitrijs2005/plaintheory/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageService_CreateUploadURL(t *testing.T) {
	blobs := &fakeBlobs{}
	s := NewStorageService(blobs, logging.Nop{}, testServerConfig())

	url, exp, err := s.CreateUploadURL(context.Background(), "u1", "u1/k.png", "image/png", common.MaxUploadSize)
	require.NoError(t, err)
	assert.Equal(t, "http://signed/put/u1/k.png", url)
	assert.False(t, exp.IsZero())
	assert.Equal(t, "image/png", blobs.putType)
	assert.Equal(t, common.MaxUploadSize, blobs.putSize)
}

func TestStorageService_CreateUploadURLPolicy(t *testing.T) {
	s := NewStorageService(&fakeBlobs{}, logging.Nop{}, testServerConfig())
	ctx := context.Background()

	_, _, err := s.CreateUploadURL(ctx, "u1", "u2/k.png", "", 1)
	require.ErrorIs(t, err, common.ErrorForbidden)

	_, _, err = s.CreateUploadURL(ctx, "u1", "u1/k.png", "", common.MaxUploadSize+1)
	require.ErrorIs(t, err, common.ErrFileTooLarge)

	_, _, err = s.CreateUploadURL(ctx, "u1", "u1/k.png", "", -1)
	require.ErrorIs(t, err, common.ErrorValidation)
}

func TestStorageService_Remove(t *testing.T) {
	blobs := &fakeBlobs{removeErr: map[string]error{"u1/bad": errBoom{}}}
	s := NewStorageService(blobs, logging.Nop{}, testServerConfig())
	ctx := context.Background()

	require.NoError(t, s.Remove(ctx, "u1", "u1/ok"))
	require.ErrorIs(t, s.Remove(ctx, "u1", "u2/ok"), common.ErrorForbidden)
	require.EqualError(t, s.Remove(ctx, "u1", "u1/bad"), "boom")
	assert.Equal(t, []string{"u1/ok"}, blobs.removed)
}

func TestStorageService_PublicURL(t *testing.T) {
	s := NewStorageService(&fakeBlobs{}, logging.Nop{}, testServerConfig())
	assert.Equal(t, "http://blob/documents/u1/k", s.PublicURL("u1/k"))
}
