package wire

import (
	"backstage-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Read-only, no API key.
func wireStorage(r chi.Router, storageHandler *adaptor.StorageHandler) {
	r.Route("/storage", func(r chi.Router) {
		r.Get("/get-bucket-list", storageHandler.ListBuckets)
		r.Get("/music-halls/{id}/pictures", storageHandler.ListPictures)
		r.Get("/music-halls/{id}/pictures/{file_name}", storageHandler.PictureURL)
	})
}

func wireHealth(r chi.Router, healthHandler *adaptor.HealthHandler) {
	r.Get("/health", healthHandler.Alive)
	r.Get("/health/ready", healthHandler.Ready)
	r.Get("/ads/ads.txt", healthHandler.AdsTxt)
}
