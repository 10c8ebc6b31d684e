package request

import (
	"encoding/json"

	"backstage-api/internal/data/entity"
)

type CreateMusicHallRequest struct {
	City       string `json:"city" validate:"required,min=1,max=100"`
	HallName   string `json:"hall_name" validate:"required,min=1,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Stage      *bool  `json:"stage" validate:"required"`
	PipeHeight *int   `json:"pipe_height" validate:"required,min=0,max=100"`
	StageType  string `json:"stage_type" validate:"required,oneof=open closed portable raised"`
}

func (r *CreateMusicHallRequest) ToEntity() *entity.MusicHall {
	return &entity.MusicHall{
		City:       r.City,
		HallName:   r.HallName,
		Email:      r.Email,
		Stage:      *r.Stage,
		PipeHeight: *r.PipeHeight,
		StageType:  entity.StageType(r.StageType),
	}
}

// UpdateMusicHallRequest holds the typed values of a partial update. A nil
// field was not sent.
type UpdateMusicHallRequest struct {
	City       *string `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	HallName   *string `json:"hall_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Stage      *bool   `json:"stage,omitempty"`
	PipeHeight *int    `json:"pipe_height,omitempty" validate:"omitempty,min=0,max=100"`
	StageType  *string `json:"stage_type,omitempty" validate:"omitempty,oneof=open closed portable raised"`
}

// Fields rebuilds the update keyed by the names present in raw. Known keys
// carry their validated value, unknown keys are passed through untouched so
// the whitelist check can name them.
func (r *UpdateMusicHallRequest) Fields(raw map[string]json.RawMessage) map[string]any {
	fields := make(map[string]any, len(raw))
	for key, value := range raw {
		switch key {
		case "city":
			fields[key] = derefOr(r.City, value)
		case "hall_name":
			fields[key] = derefOr(r.HallName, value)
		case "email":
			fields[key] = derefOr(r.Email, value)
		case "stage":
			fields[key] = derefOr(r.Stage, value)
		case "pipe_height":
			fields[key] = derefOr(r.PipeHeight, value)
		case "stage_type":
			fields[key] = derefOr(r.StageType, value)
		default:
			fields[key] = value
		}
	}
	return fields
}

func derefOr[T any](p *T, raw json.RawMessage) any {
	if p == nil {
		return raw
	}
	return *p
}

// IsUpdatableField reports whether name is a column a partial update may set.
func IsUpdatableField(name string) bool {
	_, ok := entity.LookupColumn(name)
	return ok
}
