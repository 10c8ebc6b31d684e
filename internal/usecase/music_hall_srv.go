package usecase

import (
	"context"
	"fmt"

	"backstage-api/internal/data/repository"
	"backstage-api/internal/dto/request"
	"backstage-api/internal/dto/response"

	"go.uber.org/zap"
)

type MusicHallService interface {
	ListMusicHalls(ctx context.Context) ([]response.MusicHallSummaryResponse, error)
	GetMusicHall(ctx context.Context, id int64) (*response.MusicHallResponse, error)
	CreateMusicHall(ctx context.Context, req *request.CreateMusicHallRequest) (*response.MusicHallResponse, error)
	UpdateMusicHall(ctx context.Context, id int64, fields map[string]any) (*response.MusicHallResponse, error)
	DeleteMusicHall(ctx context.Context, id int64) error
	ListRecommendations(ctx context.Context, id int64) ([]response.RecommendationResponse, error)
}

type musicHallService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMusicHallService(repo *repository.Repository, log *zap.Logger) MusicHallService {
	return &musicHallService{
		repo: repo,
		log:  log.With(zap.String("service", "music_hall")),
	}
}

func (s *musicHallService) ListMusicHalls(ctx context.Context) ([]response.MusicHallSummaryResponse, error) {
	halls, err := s.repo.MusicHall.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list music halls: %w", err)
	}

	out := make([]response.MusicHallSummaryResponse, len(halls))
	for i, hall := range halls {
		out[i] = response.MusicHallSummaryToResponse(hall)
	}

	s.log.Debug("Music halls listed", zap.Int("count", len(out)))
	return out, nil
}

func (s *musicHallService) GetMusicHall(ctx context.Context, id int64) (*response.MusicHallResponse, error) {
	hall, err := s.repo.MusicHall.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get music hall %d: %w", id, err)
	}

	resp := response.MusicHallToResponse(hall)
	return &resp, nil
}

func (s *musicHallService) CreateMusicHall(ctx context.Context, req *request.CreateMusicHallRequest) (*response.MusicHallResponse, error) {
	hall, err := s.repo.MusicHall.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, fmt.Errorf("create music hall: %w", err)
	}

	s.log.Info("Music hall created",
		zap.Int64("hall_id", hall.ID),
		zap.String("city", hall.City),
		zap.String("hall_name", hall.HallName),
	)

	resp := response.MusicHallToResponse(hall)
	return &resp, nil
}

func (s *musicHallService) UpdateMusicHall(ctx context.Context, id int64, fields map[string]any) (*response.MusicHallResponse, error) {
	hall, err := s.repo.MusicHall.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("update music hall %d: %w", id, err)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	s.log.Info("Music hall updated", zap.Int64("hall_id", id), zap.Strings("fields", keys))

	resp := response.MusicHallToResponse(hall)
	return &resp, nil
}

func (s *musicHallService) DeleteMusicHall(ctx context.Context, id int64) error {
	if err := s.repo.MusicHall.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete music hall %d: %w", id, err)
	}

	s.log.Info("Music hall deleted", zap.Int64("hall_id", id))
	return nil
}

func (s *musicHallService) ListRecommendations(ctx context.Context, id int64) ([]response.RecommendationResponse, error) {
	recs, err := s.repo.Recommendation.ListByHall(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list recommendations for hall %d: %w", id, err)
	}

	out := make([]response.RecommendationResponse, len(recs))
	for i, rec := range recs {
		out[i] = response.RecommendationToResponse(rec)
	}
	return out, nil
}
