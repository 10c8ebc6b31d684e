package repository

import (
	"context"

	"backstage-api/pkg/database"

	"go.uber.org/zap"
)

// HealthRepository probes the backing stores.
type HealthRepository interface {
	// Check returns one entry per dependency, nil meaning reachable.
	Check(ctx context.Context) map[string]error
}

type healthRepository struct {
	db      database.PgxIface
	gallery GalleryRepository
	log     *zap.Logger
}

func NewHealthRepository(db database.PgxIface, gallery GalleryRepository, log *zap.Logger) HealthRepository {
	return &healthRepository{
		db:      db,
		gallery: gallery,
		log:     log.With(zap.String("repository", "health")),
	}
}

func (r *healthRepository) Check(ctx context.Context) map[string]error {
	results := map[string]error{
		"database": r.db.Ping(ctx),
		"storage":  r.gallery.Ping(ctx),
	}
	for name, err := range results {
		if err != nil {
			r.log.Warn("Dependency check failed", zap.String("dependency", name), zap.Error(err))
		}
	}
	return results
}
