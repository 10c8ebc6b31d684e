package response

import "backstage-api/internal/data/entity"

type MusicHallResponse struct {
	ID         int64  `json:"id"`
	City       string `json:"city"`
	HallName   string `json:"hall_name"`
	Email      string `json:"email"`
	Stage      bool   `json:"stage"`
	PipeHeight int    `json:"pipe_height"`
	StageType  string `json:"stage_type"`
}

type MusicHallSummaryResponse struct {
	ID              int64  `json:"id"`
	CityAndHallName string `json:"city_and_hall_name"`
}

type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
	UpdateDate     string `json:"update_date"`
}

func MusicHallToResponse(hall *entity.MusicHall) MusicHallResponse {
	return MusicHallResponse{
		ID:         hall.ID,
		City:       hall.City,
		HallName:   hall.HallName,
		Email:      hall.Email,
		Stage:      hall.Stage,
		PipeHeight: hall.PipeHeight,
		StageType:  string(hall.StageType),
	}
}

func MusicHallSummaryToResponse(summary entity.MusicHallSummary) MusicHallSummaryResponse {
	return MusicHallSummaryResponse{
		ID:              summary.ID,
		CityAndHallName: summary.CityAndHallName,
	}
}

// RecommendationToResponse reports the date part only.
func RecommendationToResponse(rec entity.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		Recommendation: rec.Recommendation,
		UpdateDate:     rec.UpdateDate.Format("2006-01-02"),
	}
}
