package entity

import "time"

type StageType string

const (
	StageOpen     StageType = "open"
	StageClosed   StageType = "closed"
	StagePortable StageType = "portable"
	StageRaised   StageType = "raised"
)

type MusicHall struct {
	ID         int64     `db:"id"`
	City       string    `db:"city"`
	HallName   string    `db:"hall_name"`
	Email      string    `db:"email"`
	Stage      bool      `db:"stage"`
	PipeHeight int       `db:"pipe_height"`
	StageType  StageType `db:"stage_type"`
}

// MusicHallSummary is a list row: id plus "city, hall_name".
type MusicHallSummary struct {
	ID              int64  `db:"id"`
	CityAndHallName string `db:"city_and_hall_name"`
}

type Recommendation struct {
	HallID         int64     `db:"hall_id"`
	Recommendation string    `db:"recommendation"`
	UpdateDate     time.Time `db:"update_date"`
}
