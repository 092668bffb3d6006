package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/aaronwr/promptdeck/internal/api"
	"github.com/aaronwr/promptdeck/internal/store"
	"github.com/aaronwr/promptdeck/web"

	_ "github.com/aaronwr/promptdeck/docs/swagger"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Elements *store.ElementStore
	History  *store.HistoryStore
}

// NewRouter assembles the full chi router: standard middleware, the
// embedded web UI at /, the JSON API under /api/v1, Swagger UI, metrics,
// and a health check.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Static web UI (embedded). fs.Sub so the file server sees index.html
	// and app.js directly, not static/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	fileServer := http.FileServerFS(staticSub)
	r.Get("/", fileServer.ServeHTTP)
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{
		Elements: deps.Elements,
		History:  deps.History,
	}))

	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
