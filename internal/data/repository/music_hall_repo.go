package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"backstage-api/internal/data/entity"
	"backstage-api/pkg/apperr"
	"backstage-api/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const musicHallColumns = "id, city, hall_name, email, stage, pipe_height, stage_type"

type MusicHallRepository interface {
	List(ctx context.Context) ([]entity.MusicHallSummary, error)
	Get(ctx context.Context, id int64) (*entity.MusicHall, error)
	Create(ctx context.Context, hall *entity.MusicHall) (*entity.MusicHall, error)
	// Update changes only the given columns. Keys must name whitelisted columns.
	Update(ctx context.Context, id int64, fields map[string]any) (*entity.MusicHall, error)
	Delete(ctx context.Context, id int64) error
}

type musicHallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMusicHallRepository(db database.PgxIface, log *zap.Logger) MusicHallRepository {
	return &musicHallRepository{
		db:  db,
		log: log.With(zap.String("repository", "music_hall")),
	}
}

func (r *musicHallRepository) List(ctx context.Context) ([]entity.MusicHallSummary, error) {
	query := `
		SELECT id, city || ', ' || hall_name AS city_and_hall_name
		FROM music_halls
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list music halls", zap.Error(err))
		return nil, fmt.Errorf("list music halls: %w", err)
	}
	defer rows.Close()

	var halls []entity.MusicHallSummary
	for rows.Next() {
		var hall entity.MusicHallSummary
		if err := rows.Scan(&hall.ID, &hall.CityAndHallName); err != nil {
			r.log.Error("Failed to scan music hall summary", zap.Error(err))
			return nil, fmt.Errorf("scan music hall summary: %w", err)
		}
		halls = append(halls, hall)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate music hall rows: %w", err)
	}

	if len(halls) == 0 {
		return nil, apperr.ListEmpty()
	}

	return halls, nil
}

func (r *musicHallRepository) Get(ctx context.Context, id int64) (*entity.MusicHall, error) {
	query := `SELECT ` + musicHallColumns + ` FROM music_halls WHERE id = $1`

	hall, err := scanMusicHall(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(id)
	}
	if err != nil {
		r.log.Error("Failed to get music hall", zap.Error(err), zap.Int64("hall_id", id))
		return nil, fmt.Errorf("get music hall %d: %w", id, err)
	}

	return hall, nil
}

func (r *musicHallRepository) Create(ctx context.Context, hall *entity.MusicHall) (*entity.MusicHall, error) {
	query := `
		INSERT INTO music_halls (city, hall_name, email, stage, pipe_height, stage_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + musicHallColumns

	created, err := scanMusicHall(r.db.QueryRow(ctx, query,
		hall.City,
		hall.HallName,
		hall.Email,
		hall.Stage,
		hall.PipeHeight,
		string(hall.StageType),
	))
	if err != nil {
		r.log.Error("Failed to create music hall",
			zap.Error(err),
			zap.String("city", hall.City),
			zap.String("hall_name", hall.HallName),
		)
		return nil, fmt.Errorf("create music hall %s: %w", hall.HallName, err)
	}

	r.log.Info("Music hall created", zap.Int64("hall_id", created.ID))
	return created, nil
}

func (r *musicHallRepository) Update(ctx context.Context, id int64, fields map[string]any) (*entity.MusicHall, error) {
	if len(fields) == 0 {
		return nil, apperr.NoFieldsToUpdate()
	}

	var invalid []string
	for key := range fields {
		if _, ok := entity.LookupColumn(key); !ok {
			invalid = append(invalid, key)
		}
	}
	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, apperr.InvalidUpdateFields(invalid)
	}

	// Walk the whitelist rather than the map so the statement is stable.
	var queryBuilder strings.Builder
	queryBuilder.WriteString("UPDATE music_halls SET ")

	args := make([]any, 0, len(fields)+1)
	for _, col := range entity.UpdatableColumns() {
		value, ok := fields[col.Identifier()]
		if !ok {
			continue
		}
		args = append(args, value)
		if len(args) > 1 {
			queryBuilder.WriteString(", ")
		}
		queryBuilder.WriteString(fmt.Sprintf("%s = $%d", col.Identifier(), len(args)))
	}

	args = append(args, id)
	queryBuilder.WriteString(fmt.Sprintf(" WHERE id = $%d RETURNING %s", len(args), musicHallColumns))

	updated, err := scanMusicHall(r.db.QueryRow(ctx, queryBuilder.String(), args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound(id)
	}
	if err != nil {
		r.log.Error("Failed to update music hall", zap.Error(err), zap.Int64("hall_id", id))
		return nil, fmt.Errorf("update music hall %d: %w", id, err)
	}

	r.log.Info("Music hall updated", zap.Int64("hall_id", id), zap.Int("fields", len(fields)))
	return updated, nil
}

func (r *musicHallRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM music_halls WHERE id = $1 RETURNING id`

	var deletedID int64
	err := r.db.QueryRow(ctx, query, id).Scan(&deletedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(id)
	}
	if err != nil {
		r.log.Error("Failed to delete music hall", zap.Error(err), zap.Int64("hall_id", id))
		return fmt.Errorf("delete music hall %d: %w", id, err)
	}

	r.log.Info("Music hall deleted", zap.Int64("hall_id", deletedID))
	return nil
}

func scanMusicHall(row pgx.Row) (*entity.MusicHall, error) {
	var (
		hall      entity.MusicHall
		stageType string
	)
	err := row.Scan(
		&hall.ID,
		&hall.City,
		&hall.HallName,
		&hall.Email,
		&hall.Stage,
		&hall.PipeHeight,
		&stageType,
	)
	if err != nil {
		return nil, err
	}
	hall.StageType = entity.StageType(stageType)
	return &hall, nil
}
