package repository

import (
	"backstage-api/pkg/database"
	"backstage-api/pkg/storage"

	"go.uber.org/zap"
)

type Repository struct {
	MusicHall      MusicHallRepository
	Recommendation RecommendationRepository
	Gallery        GalleryRepository
	Health         HealthRepository
}

func NewRepository(db database.PgxIface, s3Client storage.S3Iface, bucket string, log *zap.Logger) *Repository {
	gallery := NewGalleryRepository(s3Client, bucket, log)

	return &Repository{
		MusicHall:      NewMusicHallRepository(db, log),
		Recommendation: NewRecommendationRepository(db, log),
		Gallery:        gallery,
		Health:         NewHealthRepository(db, gallery, log),
	}
}
