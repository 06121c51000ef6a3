package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rs/cors"

	"clubform/internal/http/handlers"
	"clubform/internal/http/metrics"
	httpmw "clubform/internal/http/middleware"
)

type RouterDependencies struct {
	ApplicationHandler *handlers.ApplicationHandler
	CatalogHandler     *handlers.CatalogHandler
	HealthHandler      *handlers.HealthHandler
	MetricsHandler     *handlers.MetricsHandler
	Metrics            *metrics.Collector
	Logger             *slog.Logger
	SubmitLimiter      httpmw.Limiter
	SubmitPerMinute    int
	TrustedProxies     httpmw.TrustedProxies
	AllowedOrigins     []string
	RequestTimeout     time.Duration
}

type Router struct {
	deps    RouterDependencies
	submit  http.Handler
	handler http.Handler
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	r := &Router{deps: deps}
	r.submit = httpmw.RateLimit(deps.SubmitLimiter, func(req *http.Request) string {
		return "submit:" + deps.TrustedProxies.ClientIP(req)
	}, deps.SubmitPerMinute, time.Minute)(http.HandlerFunc(deps.ApplicationHandler.Submit))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: deps.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})
	r.handler = httpmw.Chain(r.baseHandler(),
		httpmw.RequestID,
		httpmw.Logging(deps.Logger),
		corsHandler.Handler,
		httpmw.BodyLimit(maxBodyBytes),
		httpmw.Metrics(deps.Metrics),
		httpmw.Recover(deps.Logger),
		httpmw.Timeout(deps.RequestTimeout),
	)
	return r
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := strings.TrimSuffix(req.URL.Path, "/")

		switch {
		case req.Method == http.MethodGet && path == "/health":
			r.deps.HealthHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && path == "/api/catalog":
			r.deps.CatalogHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/applications":
			r.submit.ServeHTTP(w, req)
			return
		case req.Method == http.MethodGet && isApplicationPath(path):
			r.deps.ApplicationHandler.Get(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

// isApplicationPath matches /api/applications/{id} and nothing deeper.
func isApplicationPath(path string) bool {
	id, ok := strings.CutPrefix(path, "/api/applications/")
	return ok && id != "" && !strings.Contains(id, "/")
}
