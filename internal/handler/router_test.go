package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aaronwr/promptdeck/internal/handler"
	"github.com/aaronwr/promptdeck/internal/store"
	"github.com/aaronwr/promptdeck/internal/testutil"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := testutil.NewDataDir(t)
	return handler.NewRouter(handler.Deps{
		Elements: store.NewElementStore(dir),
		History:  store.NewHistoryStore(dir, time.UTC),
	})
}

func TestRouter_Healthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, want ok", rec.Body.String())
	}
}

func TestRouter_ServesEmbeddedUI(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "promptdeck") {
		t.Error("expected the embedded index page")
	}
}

func TestRouter_MountsAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/types", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRouter_Metrics(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "promptdeck_") {
		t.Error("expected promptdeck metrics in the exposition")
	}
}
