package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tzcatalog/internal/platform/logger"
	"tzcatalog/internal/platform/metrics"
	"tzcatalog/pkg/platform/middleware/metadata"
	"tzcatalog/pkg/platform/middleware/requestid"
	"tzcatalog/pkg/platform/middleware/requesttime"
)

// Registrar mounts a feature's routes.
type Registrar interface {
	Register(r chi.Router)
}

// Deps are the collaborators NewRouter wires together.
type Deps struct {
	Logger   *slog.Logger
	Gatherer prometheus.Gatherer
	Metrics  *metrics.HTTP
	Handlers []Registrar
}

// NewRouter builds the public router: shared middleware, /healthz, /metrics
// and every feature handler.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(logger.AccessMiddleware(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	for _, h := range deps.Handlers {
		h.Register(r)
	}
	return r
}
