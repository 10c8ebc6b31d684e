package repository

import (
	"context"
	"fmt"

	"backstage-api/internal/data/entity"
	"backstage-api/pkg/database"

	"go.uber.org/zap"
)

type RecommendationRepository interface {
	// ListByHall returns the hall's recommendations, newest first. A hall
	// without any (or an unknown hall) yields an empty slice.
	ListByHall(ctx context.Context, hallID int64) ([]entity.Recommendation, error)
}

type recommendationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRecommendationRepository(db database.PgxIface, log *zap.Logger) RecommendationRepository {
	return &recommendationRepository{
		db:  db,
		log: log.With(zap.String("repository", "recommendation")),
	}
}

func (r *recommendationRepository) ListByHall(ctx context.Context, hallID int64) ([]entity.Recommendation, error) {
	query := `
		SELECT hall_id, recommendation, update_date
		FROM music_hall_recommendations
		WHERE hall_id = $1
		ORDER BY update_date DESC
	`

	rows, err := r.db.Query(ctx, query, hallID)
	if err != nil {
		r.log.Error("Failed to list recommendations", zap.Error(err), zap.Int64("hall_id", hallID))
		return nil, fmt.Errorf("list recommendations for hall %d: %w", hallID, err)
	}
	defer rows.Close()

	recommendations := []entity.Recommendation{}
	for rows.Next() {
		var rec entity.Recommendation
		if err := rows.Scan(&rec.HallID, &rec.Recommendation, &rec.UpdateDate); err != nil {
			r.log.Error("Failed to scan recommendation row", zap.Error(err))
			return nil, fmt.Errorf("scan recommendation row: %w", err)
		}
		recommendations = append(recommendations, rec)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate recommendation rows: %w", err)
	}

	return recommendations, nil
}
