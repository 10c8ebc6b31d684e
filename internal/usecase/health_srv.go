package usecase

import (
	"context"

	"backstage-api/internal/data/repository"
	"backstage-api/internal/dto/response"
)

const aliveMessage = "ITS ALIVE!!!"

type HealthService interface {
	// Alive never touches a dependency.
	Alive() response.MessageResponse
	// Ready reports whether every dependency answered.
	Ready(ctx context.Context) (response.ReadinessResponse, bool)
}

type healthService struct {
	repo repository.HealthRepository
}

func NewHealthService(repo repository.HealthRepository) HealthService {
	return &healthService{repo: repo}
}

func (s *healthService) Alive() response.MessageResponse {
	return response.MessageResponse{Message: aliveMessage}
}

func (s *healthService) Ready(ctx context.Context) (response.ReadinessResponse, bool) {
	resp := response.ReadinessResponse{Status: "ready", Checks: map[string]string{}}
	ready := true

	for name, err := range s.repo.Check(ctx) {
		if err != nil {
			resp.Checks[name] = "unavailable"
			ready = false
			continue
		}
		resp.Checks[name] = "ok"
	}

	if !ready {
		resp.Status = "unavailable"
	}
	return resp, ready
}
