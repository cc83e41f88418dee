// Package storage is the blob store of the backend: an S3-compatible bucket
// addressed by keys of the form "<owner id>/<name>".
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/plaintheory/internal/common"
	sc "github.com/dmitrijs2005/plaintheory/internal/server/config"
)

// PresignExpiry is how long presigned URLs stay valid.
const PresignExpiry = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in, optFns...)
	}

	now = time.Now
)

type BlobStore interface {
	// PresignPut returns a URL the caller can PUT the object bytes to.
	PresignPut(ctx context.Context, key, contentType string, size int64) (string, time.Time, error)
	PresignGet(ctx context.Context, key string) (string, error)
	// PublicURL is the stable address of key; it does not check existence.
	PublicURL(key string) string
	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

type S3Store struct {
	config *sc.Config
}

func NewS3Store(config *sc.Config) *S3Store {
	return &S3Store{config: config}
}

func (s *S3Store) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func (s *S3Store) PresignPut(ctx context.Context, key, contentType string, size int64) (string, time.Time, error) {
	c, err := s.client(ctx)
	if err != nil {
		return "", time.Time{}, err
	}

	in := &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}
	if size > 0 {
		in.ContentLength = aws.Int64(size)
	}

	expires := now().Add(PresignExpiry)
	req, err := presignPutObject(newS3PresignClient(c), ctx, in, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign put: %w", err)
	}
	return req.URL, expires, nil
}

func (s *S3Store) PresignGet(ctx context.Context, key string) (string, error) {
	c, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(newS3PresignClient(c), ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("presign get: %w", err)
	}
	return req.URL, nil
}

func (s *S3Store) PublicURL(key string) string {
	base := strings.TrimRight(s.config.S3PublicBaseURL, "/")
	return base + "/" + s.config.S3Bucket + "/" + key
}

func (s *S3Store) Remove(ctx context.Context, key string) error {
	c, err := s.client(ctx)
	if err != nil {
		return err
	}
	_, err = deleteObject(c, ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNoSuchKey(err) {
			return nil
		}
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}

func isNoSuchKey(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() == "NoSuchKey"
	}
	return false
}

// CheckOwnerKey enforces the bucket access policy: the first path segment of
// key must be the caller's id and the remainder a plain file name.
func CheckOwnerKey(ownerID, key string) error {
	if ownerID == "" {
		return common.ErrorUnauthorized
	}
	prefix, name, ok := strings.Cut(key, "/")
	if !ok || prefix != ownerID {
		return common.ErrorForbidden
	}
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return common.ErrorValidation
	}
	return nil
}
