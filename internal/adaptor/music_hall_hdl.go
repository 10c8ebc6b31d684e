package adaptor

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"sort"

	"backstage-api/internal/dto/request"
	"backstage-api/internal/usecase"
	"backstage-api/pkg/apperr"
	"backstage-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type MusicHallHandler struct {
	service usecase.MusicHallService
	log     *zap.Logger
}

func NewMusicHallHandler(service usecase.MusicHallService, log *zap.Logger) *MusicHallHandler {
	return &MusicHallHandler{
		service: service,
		log:     log.With(zap.String("handler", "music_hall")),
	}
}

// ListMusicHalls handles GET /db/music-halls
func (h *MusicHallHandler) ListMusicHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.ListMusicHalls(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "list music halls")
		return
	}

	utils.ResponseSuccess(w, halls)
}

// GetMusicHall handles GET /db/music-halls/{id}
func (h *MusicHallHandler) GetMusicHall(w http.ResponseWriter, r *http.Request) {
	id, ok := h.hallID(w, r, "get music hall")
	if !ok {
		return
	}

	hall, err := h.service.GetMusicHall(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get music hall")
		return
	}

	utils.ResponseSuccess(w, hall)
}

// CreateMusicHall handles POST /db/music-halls
func (h *MusicHallHandler) CreateMusicHall(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMusicHallRequest

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		handleServiceError(h.log, w, r, decodeError(err), "create music hall")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		handleServiceError(h.log, w, r, apperr.Validation("Validation failed", validationErrors), "create music hall")
		return
	}

	hall, err := h.service.CreateMusicHall(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create music hall")
		return
	}

	utils.ResponseCreated(w, hall)
}

// UpdateMusicHall handles PUT /db/music-halls/{id}. Only the keys present in
// the body are written.
func (h *MusicHallHandler) UpdateMusicHall(w http.ResponseWriter, r *http.Request) {
	id, ok := h.hallID(w, r, "update music hall")
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		handleServiceError(h.log, w, r, decodeError(err), "update music hall")
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		handleServiceError(h.log, w, r, apperr.Validation("Request body must be a JSON object", nil), "update music hall")
		return
	}

	// encoding/json folds case when filling the struct, so the whitelist is
	// checked on the keys as sent.
	if unknown := unknownFields(raw); len(unknown) > 0 {
		handleServiceError(h.log, w, r, apperr.InvalidUpdateFields(unknown), "update music hall")
		return
	}

	if nulls := nullFields(raw); len(nulls) > 0 {
		handleServiceError(h.log, w, r, apperr.Validation("Validation failed", nulls), "update music hall")
		return
	}

	var req request.UpdateMusicHallRequest
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		handleServiceError(h.log, w, r, decodeError(err), "update music hall")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		handleServiceError(h.log, w, r, apperr.Validation("Validation failed", validationErrors), "update music hall")
		return
	}

	hall, err := h.service.UpdateMusicHall(r.Context(), id, req.Fields(raw))
	if err != nil {
		handleServiceError(h.log, w, r, err, "update music hall")
		return
	}

	utils.ResponseSuccess(w, hall)
}

// DeleteMusicHall handles DELETE /db/music-halls/{id}
func (h *MusicHallHandler) DeleteMusicHall(w http.ResponseWriter, r *http.Request) {
	id, ok := h.hallID(w, r, "delete music hall")
	if !ok {
		return
	}

	if err := h.service.DeleteMusicHall(r.Context(), id); err != nil {
		handleServiceError(h.log, w, r, err, "delete music hall")
		return
	}

	utils.ResponseNoContent(w)
}

// ListRecommendations handles GET /db/music-halls/{id}/recommendations
func (h *MusicHallHandler) ListRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := h.hallID(w, r, "list recommendations")
	if !ok {
		return
	}

	recs, err := h.service.ListRecommendations(r.Context(), id)
	if err != nil {
		handleServiceError(h.log, w, r, err, "list recommendations")
		return
	}

	utils.ResponseSuccess(w, recs)
}

func (h *MusicHallHandler) hallID(w http.ResponseWriter, r *http.Request, operation string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, r, apperr.Validation("Invalid music hall ID", map[string]string{
			"id": "Must be a positive integer",
		}), operation)
		return 0, false
	}
	return id, true
}

// nullFields lists the known columns sent as JSON null. Every column is
// NOT NULL, so such an update can never succeed.
func nullFields(raw map[string]json.RawMessage) map[string]string {
	var out map[string]string
	for key, value := range raw {
		if !bytes.Equal(bytes.TrimSpace(value), []byte("null")) || !request.IsUpdatableField(key) {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[key] = "Must not be null"
	}
	return out
}

func unknownFields(raw map[string]json.RawMessage) []string {
	var out []string
	for key := range raw {
		if !request.IsUpdatableField(key) {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}
