// Package api provides the HTTP handlers for the sharing REST API.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sharegov/internal/middleware"
	"sharegov/internal/service/gds"
)

// Handler exposes the sharing services over HTTP.
type Handler struct {
	services *gds.Services
	log      *slog.Logger
}

func NewHandler(services *gds.Services, log *slog.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// RouterConfig carries the cross-cutting knobs the router needs.
type RouterConfig struct {
	JWTSecret         []byte
	AllowedOrigins    []string
	RequestsPerSecond float64
	Burst             int
}

// NewRouter builds the chi router: public health endpoint, authenticated
// /v1 API, CORS, request IDs, and per-client rate limiting.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if cfg.RequestsPerSecond > 0 {
		r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RequestsPerSecond,
			Burst:             cfg.Burst,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		r.Route("/datasets", func(r chi.Router) {
			r.Get("/", h.listDatasets)
			r.Post("/", h.createDataset)
			r.Get("/{id}", h.getDataset)
			r.Put("/{id}", h.updateDataset)
			r.Delete("/{id}", h.deleteDataset)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.listProjects)
			r.Post("/", h.createProject)
			r.Get("/{id}", h.getProject)
			r.Put("/{id}", h.updateProject)
			r.Delete("/{id}", h.deleteProject)
		})

		r.Route("/datashares", func(r chi.Router) {
			r.Get("/", h.listDataShares)
			r.Post("/", h.createDataShare)
			r.Get("/{id}", h.getDataShare)
			r.Put("/{id}", h.updateDataShare)
			r.Delete("/{id}", h.deleteDataShare)
			r.Get("/{id}/resources", h.listSharedResources)
		})

		r.Route("/shared-resources", func(r chi.Router) {
			r.Post("/", h.createSharedResource)
			r.Get("/{id}", h.getSharedResource)
			r.Put("/{id}", h.updateSharedResource)
			r.Delete("/{id}", h.deleteSharedResource)
		})

		r.Route("/datashare-in-dataset", func(r chi.Router) {
			r.Get("/", h.listShareInDataset)
			r.Post("/", h.createShareInDataset)
			r.Get("/{id}", h.getShareInDataset)
			r.Put("/{id}", h.updateShareInDataset)
			r.Delete("/{id}", h.deleteShareInDataset)
		})

		r.Route("/dataset-in-project", func(r chi.Router) {
			r.Get("/", h.listDatasetInProject)
			r.Post("/", h.createDatasetInProject)
			r.Get("/{id}", h.getDatasetInProject)
			r.Put("/{id}", h.updateDatasetInProject)
			r.Delete("/{id}", h.deleteDatasetInProject)
		})

		r.Get("/audit", h.listAudit)
	})

	return r
}

// idParam parses the {id} URL parameter. A malformed ID writes a 400 and
// reports false.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid id parameter",
		})
		return 0, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into v. A malformed body writes
// a 400 and reports false.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body: " + err.Error(),
		})
		return false
	}
	return true
}
