package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"detailpage/internal/http/handlers"
	"detailpage/internal/infra"
	mw "detailpage/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, log infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(mw.RequestID)
	r.Use(mw.Logger(log))
	r.Use(mw.CORS(cfg.CORSOrigins))
	r.Use(mw.Locale("ko"))

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/presets", app.ListPresets)

		r.Route("/page", func(r chi.Router) {
			r.Get("/", app.GetPage)
			r.Put("/", app.PutPage)
		})

		r.Route("/sections", func(r chi.Router) {
			r.Get("/", app.ListSections)
			r.Post("/{name}", app.EnableSection)
			r.Delete("/{name}", app.DisableSection)
		})

		r.With(mw.RateLimit(cfg.RateLimitPerMin, time.Minute)).
			Post("/copywriting", app.GenerateCopy)

		r.Route("/export", func(r chi.Router) {
			r.Post("/detail", app.ExportDetail)
			r.Post("/thumbnails", app.ExportThumbnails)
		})

		r.Route("/snapshots", func(r chi.Router) {
			r.Post("/{slot}", app.SaveSnapshot)
			r.Post("/{slot}/restore", app.RestoreSnapshot)
		})
	})

	return r
}
