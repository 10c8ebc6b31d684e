package usecase

import (
	"backstage-api/internal/data/repository"
	"backstage-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	MusicHall MusicHallService
	Gallery   GalleryService
	Health    HealthService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		MusicHall: NewMusicHallService(repo, log),
		Gallery:   NewGalleryService(repo.Gallery, config.Storage.PresignExpiry, log),
		Health:    NewHealthService(repo.Health),
	}
}
