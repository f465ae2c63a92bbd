package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/jbweber/homelab/nettree/internal/logger"
	"github.com/jbweber/homelab/nettree/internal/repository"
)

// API serves the inventory held in a network repository
type API struct {
	networks repository.NetworkRepository
	log      *zap.SugaredLogger
}

// NewAPI creates an API backed by networks. A nil log uses the global logger.
func NewAPI(networks repository.NetworkRepository, log *zap.SugaredLogger) *API {
	if log == nil {
		log = logger.Logger()
	}
	return &API{
		networks: networks,
		log:      log,
	}
}

// RegisterRoutes registers all API routes with the router
func (a *API) RegisterRoutes(r chi.Router) {
	r.Get("/", a.healthHandler)

	r.Route("/api/v0/networks", func(r chi.Router) {
		r.Get("/", a.listNetworksHandler)

		r.Route("/{network}", func(r chi.Router) {
			r.Get("/", a.renderNetworkHandler)
			r.Delete("/", a.deleteNetworkHandler)
			r.Post("/clone", a.cloneNetworkHandler)

			r.Get("/computers/{computer}", a.getComputerHandler)
			r.Post("/computers/{computer}/disks", a.addDiskHandler)
		})
	})
}

func (a *API) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte("nettree service is running\n")); err != nil {
		a.log.Warnw("failed to write health response", "error", err)
	}
}
