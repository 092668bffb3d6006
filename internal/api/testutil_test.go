package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaronwr/promptdeck/internal/api"
	"github.com/aaronwr/promptdeck/internal/store"
	"github.com/aaronwr/promptdeck/internal/testutil"
)

// testEnv holds the router and stores needed for API integration tests.
type testEnv struct {
	Router   http.Handler
	Elements *store.ElementStore
	History  *store.HistoryStore
	DataDir  string
}

// newTestEnv wires the full API router over stores backed by a temp dir.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := testutil.NewDataDir(t)

	elements := store.NewElementStore(dir)
	history := store.NewHistoryStore(dir, time.FixedZone("MDT", -6*60*60))

	router := api.NewAPIRouter(api.Deps{Elements: elements, History: history})
	return &testEnv{Router: router, Elements: elements, History: history, DataDir: dir}
}

// doJSON performs a request with a JSON body and decodes the JSON response
// into out (skipped when out is nil or the response has no body).
func doJSON(t *testing.T, env *testEnv, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

// seedElement creates an element directly through the store.
func seedElement(t *testing.T, env *testEnv, title, typ, content string) {
	t.Helper()
	if _, err := env.Elements.Add(title, typ, content); err != nil {
		t.Fatalf("seed element %q: %v", title, err)
	}
}

// errCode extracts the error code from an error response body.
func errCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body api.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return body.Code
}
