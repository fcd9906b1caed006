package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/goalplan/engine/internal/api/handlers"
	mw "github.com/goalplan/engine/internal/api/middleware"
	"github.com/goalplan/engine/internal/web"
	"github.com/goalplan/engine/pkg/logger"
)

type Dependencies struct {
	Logger        *zap.Logger
	PlansHandler  *handlers.PlansHandler
	PagesHandler  *handlers.PagesHandler
	HealthHandler *handlers.HealthHandler

	// RateLimitRPS of 0 leaves inbound requests unlimited.
	RateLimitRPS   float64
	RateLimitBurst int
}

func NewRouter(dep Dependencies) http.Handler {
	log := dep.Logger
	if log == nil {
		log = logger.L()
	}

	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.Recovery(log))
	r.Use(mw.Logging(log))
	r.Use(mw.CORS)
	if dep.RateLimitRPS > 0 {
		r.Use(mw.RateLimit(dep.RateLimitRPS, dep.RateLimitBurst))
	}
	r.Use(chimid.Compress(5))

	hh := dep.HealthHandler
	if hh == nil {
		hh = handlers.NewHealthHandler(nil)
	}
	r.Get("/healthz", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(web.Static()))))

	r.Get("/", dep.PagesHandler.Index)
	r.Route("/plans", func(pr chi.Router) {
		pr.Get("/", dep.PagesHandler.Plans)
		pr.Get("/{id}", dep.PlansHandler.Get)
	})
	r.Post("/create-plan", dep.PlansHandler.Create)

	return r
}
