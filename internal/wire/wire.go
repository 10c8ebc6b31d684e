package wire

import (
	"net/http"

	"backstage-api/internal/adaptor"
	"backstage-api/internal/data/repository"
	"backstage-api/internal/usecase"
	"backstage-api/pkg/apperr"
	"backstage-api/pkg/metrics"
	"backstage-api/pkg/middleware"
	"backstage-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router on top of the repositories.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))
	r.Use(chimw.StripSlashes)

	// Set before any Route/Mount so subrouters inherit them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, apperr.Map(apperr.RouteNotFound(r.URL.Path)))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, apperr.Map(apperr.MethodNotAllowed(r.Method)))
	})

	wireHealth(r, handler.Health)
	wireMusicHall(r, handler.MusicHall, config, logger)
	wireStorage(r, handler.Storage)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
