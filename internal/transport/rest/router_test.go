package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/studyhub/search-backend/internal/config"
	"github.com/studyhub/search-backend/internal/ratelimit"
	"github.com/studyhub/search-backend/internal/service/search"
)

func testRouter(t *testing.T, limit int) http.Handler {
	t.Helper()

	svc := &stubService{
		result:      &search.Result{},
		suggestions: &search.Suggestions{},
		catalog:     &search.FilterCatalog{},
	}

	store := ratelimit.NewMemoryStore(time.Minute)
	t.Cleanup(store.Stop)
	limiter := ratelimit.New(store, limit, time.Minute, testLogger())

	return NewRouter(
		testLogger(),
		config.CORSConfig{},
		NewSearchHandler(testLogger(), svc),
		NewHealthHandler(&pingerMock{}, nil, "test"),
		limiter,
	)
}

func TestRouter_SuggestionsRateLimited(t *testing.T) {
	t.Parallel()

	router := testRouter(t, 2)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/search/suggestions?q=alg", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/search/suggestions?q=alg", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Errorf("expected Retry-After '60', got %q", got)
	}
}

func TestRouter_SearchNotRateLimited(t *testing.T) {
	t.Parallel()

	router := testRouter(t, 1)

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=algebra", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected status 200, got %d", i+1, rec.Code)
		}
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router := testRouter(t, 1)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/search", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", rec.Code)
	}
}

func TestRouter_UnknownRoute404(t *testing.T) {
	t.Parallel()

	router := testRouter(t, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}
