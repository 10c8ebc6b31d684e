package adaptor

import (
	"backstage-api/internal/usecase"
	"backstage-api/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	MusicHall *MusicHallHandler
	Storage   *StorageHandler
	Health    *HealthHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		MusicHall: NewMusicHallHandler(service.MusicHall, log),
		Storage:   NewStorageHandler(service.Gallery, log),
		Health:    NewHealthHandler(service.Health, config.App.AdsTxtPath, log),
	}
}
