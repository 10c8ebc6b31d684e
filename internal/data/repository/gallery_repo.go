package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"backstage-api/pkg/apperr"
	"backstage-api/pkg/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.uber.org/zap"
)

// PictureSuffix is appended to every picture key and stripped from listings.
const PictureSuffix = ".JPG"

// DefaultPresignExpiry applies when a caller passes a non-positive expiry.
const DefaultPresignExpiry = 180 * time.Second

type GalleryRepository interface {
	ListBuckets(ctx context.Context) ([]string, error)
	// ListObjectNames returns the keys under prefix with prefix and
	// PictureSuffix removed.
	ListObjectNames(ctx context.Context, prefix string) ([]string, error)
	// PresignedURL returns a time-limited GET URL for an existing key.
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Ping(ctx context.Context) error
}

type galleryRepository struct {
	client storage.S3Iface
	bucket string
	log    *zap.Logger
}

func NewGalleryRepository(client storage.S3Iface, bucket string, log *zap.Logger) GalleryRepository {
	return &galleryRepository{
		client: client,
		bucket: bucket,
		log:    log.With(zap.String("repository", "gallery"), zap.String("bucket", bucket)),
	}
}

func (r *galleryRepository) ListBuckets(ctx context.Context) ([]string, error) {
	out, err := r.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		r.log.Error("Failed to list buckets", zap.Error(err))
		return nil, apperr.Storage(fmt.Errorf("list buckets: %w", err))
	}

	names := make([]string, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		names = append(names, aws.ToString(b.Name))
	}
	return names, nil
}

func (r *galleryRepository) ListObjectNames(ctx context.Context, prefix string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(r.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(r.bucket),
		Prefix: aws.String(prefix),
	})

	names := []string{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			r.log.Error("Failed to list objects", zap.Error(err), zap.String("prefix", prefix))
			return nil, apperr.Storage(fmt.Errorf("list objects %q: %w", prefix, err))
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if key == prefix || !strings.HasPrefix(key, prefix) {
				continue
			}
			names = append(names, strings.TrimSuffix(strings.TrimPrefix(key, prefix), PictureSuffix))
		}
	}

	return names, nil
}

func (r *galleryRepository) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}

	_, err := r.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isObjectNotFound(err) {
			return "", apperr.PictureNotFound(key)
		}
		r.log.Error("Failed to check object", zap.Error(err), zap.String("key", key))
		return "", apperr.Storage(fmt.Errorf("head object %q: %w", key, err))
	}

	req, err := r.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		r.log.Error("Failed to presign object", zap.Error(err), zap.String("key", key))
		return "", apperr.Storage(fmt.Errorf("presign %q: %w", key, err))
	}

	return req.URL, nil
}

func (r *galleryRepository) Ping(ctx context.Context) error {
	if _, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r.bucket)}); err != nil {
		return fmt.Errorf("head bucket: %w", err)
	}
	return nil
}

func isObjectNotFound(err error) bool {
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
