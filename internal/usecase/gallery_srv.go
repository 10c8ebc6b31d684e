package usecase

import (
	"context"
	"fmt"
	"time"

	"backstage-api/internal/data/repository"
	"backstage-api/internal/dto/response"

	"go.uber.org/zap"
)

type GalleryService interface {
	ListBuckets(ctx context.Context) (*response.BucketListResponse, error)
	ListPictures(ctx context.Context, prefix string) (*response.PictureListResponse, error)
	PictureURL(ctx context.Context, key string) (*response.PictureURLResponse, error)
}

type galleryService struct {
	repo   repository.GalleryRepository
	expiry time.Duration
	log    *zap.Logger
}

func NewGalleryService(repo repository.GalleryRepository, expiry time.Duration, log *zap.Logger) GalleryService {
	return &galleryService{
		repo:   repo,
		expiry: expiry,
		log:    log.With(zap.String("service", "gallery")),
	}
}

func (s *galleryService) ListBuckets(ctx context.Context) (*response.BucketListResponse, error) {
	buckets, err := s.repo.ListBuckets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	return &response.BucketListResponse{Buckets: buckets}, nil
}

func (s *galleryService) ListPictures(ctx context.Context, prefix string) (*response.PictureListResponse, error) {
	files, err := s.repo.ListObjectNames(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list pictures %q: %w", prefix, err)
	}

	s.log.Debug("Pictures listed", zap.String("prefix", prefix), zap.Int("count", len(files)))
	return &response.PictureListResponse{Files: files}, nil
}

func (s *galleryService) PictureURL(ctx context.Context, key string) (*response.PictureURLResponse, error) {
	url, err := s.repo.PresignedURL(ctx, key, s.expiry)
	if err != nil {
		return nil, fmt.Errorf("picture url %q: %w", key, err)
	}
	return &response.PictureURLResponse{URL: url}, nil
}
