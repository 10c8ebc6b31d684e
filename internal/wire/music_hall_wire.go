package wire

import (
	"backstage-api/internal/adaptor"
	"backstage-api/pkg/middleware"
	"backstage-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMusicHall(
	r chi.Router,
	musicHallHandler *adaptor.MusicHallHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/db/music-halls", func(r chi.Router) {
		// ==================== PUBLIC ROUTES ====================
		r.Get("/", musicHallHandler.ListMusicHalls)
		r.Get("/{id}", musicHallHandler.GetMusicHall)
		r.Get("/{id}/recommendations", musicHallHandler.ListRecommendations)

		// ==================== API KEY ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKey(config.Auth, log))

			r.Post("/", musicHallHandler.CreateMusicHall)
			r.Put("/{id}", musicHallHandler.UpdateMusicHall)
			r.Delete("/{id}", musicHallHandler.DeleteMusicHall)
		})
	})
}
