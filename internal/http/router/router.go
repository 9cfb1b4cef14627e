package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"vendora-dispatch/internal/http/handlers"
	"vendora-dispatch/internal/http/middleware"
	"vendora-dispatch/internal/http/middleware/ratelimit"
	"vendora-dispatch/internal/logx"
)

const defaultTimeout = 10 * time.Second

// Options configures middleware and operational routes.
type Options struct {
	Logger         logx.Logger
	RateLimit      *ratelimit.Middleware // nil disables limiting
	AllowedOrigins []string
	Metrics        http.Handler // nil disables /metrics
	Timeout        time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h *handlers.Handlers, d *handlers.DispatchHandler, opts Options) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(opts.Logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(opts.Timeout))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.CORS(opts.AllowedOrigins))
		if opts.RateLimit != nil {
			r.Use(opts.RateLimit.Handler())
		}
		r.Post("/assign-delivery", d.Assign)
		r.Options("/assign-delivery", d.Preflight)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))
	r.MethodNotAllowed(http.HandlerFunc(h.MethodNotAllowed))

	return r
}
