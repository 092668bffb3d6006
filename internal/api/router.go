package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aaronwr/promptdeck/internal/store"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Elements *store.ElementStore
	History  *store.HistoryStore
}

// NewAPIRouter creates a chi sub-router for /api/v1. All routes return
// application/json except the CSV export.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	registerElementRoutes(r, deps.Elements)
	registerPromptRoutes(r, deps.Elements, deps.History)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json
// on all responses. Handlers serving other media types overwrite it.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
