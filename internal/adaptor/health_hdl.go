package adaptor

import (
	"errors"
	"io/fs"
	"net/http"
	"os"

	"backstage-api/internal/usecase"
	"backstage-api/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	service    usecase.HealthService
	adsTxtPath string
	log        *zap.Logger
}

func NewHealthHandler(service usecase.HealthService, adsTxtPath string, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service:    service,
		adsTxtPath: adsTxtPath,
		log:        log.With(zap.String("handler", "health")),
	}
}

// Alive handles GET /health
func (h *HealthHandler) Alive(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.Alive())
}

// Ready handles GET /health/ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	resp, ready := h.service.Ready(r.Context())
	if !ready {
		h.log.Warn("Readiness check failed", zap.Any("checks", resp.Checks))
		utils.ResponseJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	utils.ResponseSuccess(w, resp)
}

// AdsTxt handles GET /ads/ads.txt
func (h *HealthHandler) AdsTxt(w http.ResponseWriter, r *http.Request) {
	content, err := os.ReadFile(h.adsTxtPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			h.log.Error("Failed to read ads.txt", zap.Error(err), zap.String("path", h.adsTxtPath))
		}
		utils.ResponseSuccess(w, map[string]string{"error": "ads.txt not found"})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
