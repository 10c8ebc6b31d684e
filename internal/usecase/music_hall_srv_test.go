package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"backstage-api/internal/data/entity"
	"backstage-api/internal/data/repository"
	"backstage-api/internal/dto/request"
	"backstage-api/internal/dto/response"
	"backstage-api/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryHalls mimics the store: ids are assigned on create, deletes cascade.
type memoryHalls struct {
	nextID int64
	halls  map[int64]entity.MusicHall
	recs   map[int64][]entity.Recommendation
	err    error
}

func newMemoryHalls() *memoryHalls {
	return &memoryHalls{
		nextID: 1,
		halls:  map[int64]entity.MusicHall{},
		recs:   map[int64][]entity.Recommendation{},
	}
}

func (m *memoryHalls) List(ctx context.Context) ([]entity.MusicHallSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.halls) == 0 {
		return nil, apperr.ListEmpty()
	}
	var out []entity.MusicHallSummary
	for id, h := range m.halls {
		out = append(out, entity.MusicHallSummary{ID: id, CityAndHallName: h.City + ", " + h.HallName})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryHalls) Get(ctx context.Context, id int64) (*entity.MusicHall, error) {
	h, ok := m.halls[id]
	if !ok {
		return nil, apperr.NotFound(id)
	}
	return &h, nil
}

func (m *memoryHalls) Create(ctx context.Context, hall *entity.MusicHall) (*entity.MusicHall, error) {
	if m.err != nil {
		return nil, m.err
	}
	h := *hall
	h.ID = m.nextID
	m.nextID++
	m.halls[h.ID] = h
	return &h, nil
}

func (m *memoryHalls) Update(ctx context.Context, id int64, fields map[string]any) (*entity.MusicHall, error) {
	if len(fields) == 0 {
		return nil, apperr.NoFieldsToUpdate()
	}
	h, ok := m.halls[id]
	if !ok {
		return nil, apperr.NotFound(id)
	}
	for k, v := range fields {
		col, ok := entity.LookupColumn(k)
		if !ok {
			return nil, apperr.InvalidUpdateFields([]string{k})
		}
		switch col {
		case entity.ColumnCity:
			h.City = v.(string)
		case entity.ColumnHallName:
			h.HallName = v.(string)
		case entity.ColumnEmail:
			h.Email = v.(string)
		case entity.ColumnStage:
			h.Stage = v.(bool)
		case entity.ColumnPipeHeight:
			h.PipeHeight = v.(int)
		case entity.ColumnStageType:
			h.StageType = entity.StageType(v.(string))
		}
	}
	m.halls[id] = h
	return &h, nil
}

func (m *memoryHalls) Delete(ctx context.Context, id int64) error {
	if _, ok := m.halls[id]; !ok {
		return apperr.NotFound(id)
	}
	delete(m.halls, id)
	delete(m.recs, id)
	return nil
}

func (m *memoryHalls) ListByHall(ctx context.Context, hallID int64) ([]entity.Recommendation, error) {
	out := append([]entity.Recommendation{}, m.recs[hallID]...)
	sort.Slice(out, func(i, j int) bool { return out[i].UpdateDate.After(out[j].UpdateDate) })
	return out, nil
}

func newTestMusicHallService(store *memoryHalls) MusicHallService {
	return NewMusicHallService(&repository.Repository{
		MusicHall:      store,
		Recommendation: store,
	}, zap.NewNop())
}

func validCreateRequest() *request.CreateMusicHallRequest {
	stage := true
	height := 10
	return &request.CreateMusicHallRequest{
		City:       "X",
		HallName:   "Y",
		Email:      "a@b.co",
		Stage:      &stage,
		PipeHeight: &height,
		StageType:  "open",
	}
}

func TestMusicHallServiceCreateThenGet(t *testing.T) {
	store := newMemoryHalls()
	svc := newTestMusicHallService(store)

	created, err := svc.CreateMusicHall(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	got, err := svc.GetMusicHall(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, response.MusicHallResponse{
		ID: created.ID, City: "X", HallName: "Y", Email: "a@b.co", Stage: true, PipeHeight: 10, StageType: "open",
	}, *got)
}

func TestMusicHallServiceListOrderAndEmpty(t *testing.T) {
	store := newMemoryHalls()
	svc := newTestMusicHallService(store)

	_, err := svc.ListMusicHalls(context.Background())
	assert.True(t, apperr.IsKind(err, apperr.KindListEmpty))

	for i := 0; i < 3; i++ {
		_, err := svc.CreateMusicHall(context.Background(), validCreateRequest())
		require.NoError(t, err)
	}

	list, err := svc.ListMusicHalls(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, item := range list {
		assert.Equal(t, int64(i+1), item.ID)
		assert.Equal(t, "X, Y", item.CityAndHallName)
	}
}

func TestMusicHallServiceUpdateTouchesOnlyGivenFields(t *testing.T) {
	store := newMemoryHalls()
	svc := newTestMusicHallService(store)

	created, err := svc.CreateMusicHall(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateMusicHall(context.Background(), created.ID, map[string]any{"city": "Jaffa"})
	require.NoError(t, err)
	assert.Equal(t, "Jaffa", updated.City)
	assert.Equal(t, created.HallName, updated.HallName)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.PipeHeight, updated.PipeHeight)
}

func TestMusicHallServiceErrorsKeepKind(t *testing.T) {
	store := newMemoryHalls()
	svc := newTestMusicHallService(store)

	_, err := svc.GetMusicHall(context.Background(), 999999)
	assert.Equal(t, "MUSIC_HALL_NOT_FOUND", apperr.Map(err).Code)

	_, err = svc.UpdateMusicHall(context.Background(), 999999, map[string]any{})
	assert.Equal(t, "NO_FIELDS_TO_UPDATE", apperr.Map(err).Code)

	err = svc.DeleteMusicHall(context.Background(), 999999)
	assert.Equal(t, "MUSIC_HALL_NOT_FOUND", apperr.Map(err).Code)

	store.err = errors.New("pool closed")
	_, err = svc.CreateMusicHall(context.Background(), validCreateRequest())
	assert.Equal(t, "INTERNAL_ERROR", apperr.Map(err).Code)
}

func TestMusicHallServiceDeleteCascades(t *testing.T) {
	store := newMemoryHalls()
	svc := newTestMusicHallService(store)

	created, err := svc.CreateMusicHall(context.Background(), validCreateRequest())
	require.NoError(t, err)
	store.recs[created.ID] = []entity.Recommendation{
		{HallID: created.ID, Recommendation: "Good PA", UpdateDate: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
	}

	require.NoError(t, svc.DeleteMusicHall(context.Background(), created.ID))

	_, err = svc.GetMusicHall(context.Background(), created.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	recs, err := svc.ListRecommendations(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestMusicHallServiceListRecommendations(t *testing.T) {
	store := newMemoryHalls()
	svc := newTestMusicHallService(store)

	store.recs[1] = []entity.Recommendation{
		{HallID: 1, Recommendation: "older", UpdateDate: time.Date(2023, 3, 4, 23, 59, 0, 0, time.UTC)},
		{HallID: 1, Recommendation: "newer", UpdateDate: time.Date(2024, 7, 8, 1, 0, 0, 0, time.UTC)},
	}

	recs, err := svc.ListRecommendations(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []response.RecommendationResponse{
		{Recommendation: "newer", UpdateDate: "2024-07-08"},
		{Recommendation: "older", UpdateDate: "2023-03-04"},
	}, recs)

	empty, err := svc.ListRecommendations(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
