package adaptor

import (
	"net/http"

	"backstage-api/internal/dto/request"
	"backstage-api/internal/usecase"
	"backstage-api/pkg/apperr"
	"backstage-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type StorageHandler struct {
	service usecase.GalleryService
	log     *zap.Logger
}

func NewStorageHandler(service usecase.GalleryService, log *zap.Logger) *StorageHandler {
	return &StorageHandler{
		service: service,
		log:     log.With(zap.String("handler", "storage")),
	}
}

// ListBuckets handles GET /storage/get-bucket-list
func (h *StorageHandler) ListBuckets(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.service.ListBuckets(r.Context())
	if err != nil {
		handleServiceError(h.log, w, r, err, "list buckets")
		return
	}

	utils.ResponseSuccess(w, buckets)
}

// ListPictures handles GET /storage/music-halls/{id}/pictures
func (h *StorageHandler) ListPictures(w http.ResponseWriter, r *http.Request) {
	hallID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, r, apperr.Validation("Invalid music hall ID", map[string]string{
			"id": "Must be a positive integer",
		}), "list pictures")
		return
	}

	files, err := h.service.ListPictures(r.Context(), request.PicturePrefix(hallID))
	if err != nil {
		handleServiceError(h.log, w, r, err, "list pictures")
		return
	}

	utils.ResponseSuccess(w, files)
}

// PictureURL handles GET /storage/music-halls/{id}/pictures/{file_name}
func (h *StorageHandler) PictureURL(w http.ResponseWriter, r *http.Request) {
	hallID, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, r, apperr.Validation("Invalid music hall ID", map[string]string{
			"id": "Must be a positive integer",
		}), "get picture url")
		return
	}

	params := request.PictureParams{HallID: hallID, FileName: chi.URLParam(r, "file_name")}
	if validationErrors := utils.ValidateStruct(params); len(validationErrors) > 0 {
		handleServiceError(h.log, w, r, apperr.Validation("Validation failed", validationErrors), "get picture url")
		return
	}

	url, err := h.service.PictureURL(r.Context(), params.Key())
	if err != nil {
		handleServiceError(h.log, w, r, err, "get picture url")
		return
	}

	utils.ResponseSuccess(w, url)
}
