package rest

import (
	"log/slog"
	"net/http"

	"github.com/studyhub/search-backend/internal/config"
	"github.com/studyhub/search-backend/internal/ratelimit"
	"github.com/studyhub/search-backend/internal/transport/middleware"
)

// NewRouter assembles the HTTP surface: the search endpoints under
// /api/v1/ plus the health probes. The suggestion endpoint alone sits
// behind the per-client rate limiter.
func NewRouter(
	logger *slog.Logger,
	cfg config.CORSConfig,
	searchH *SearchHandler,
	healthH *HealthHandler,
	limiter *ratelimit.Limiter,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/search", searchH.Search)
	mux.Handle("GET /api/v1/search/suggestions",
		middleware.RateLimit(limiter)(http.HandlerFunc(searchH.Suggest)))
	mux.HandleFunc("GET /api/v1/search/filters", searchH.Filters)

	mux.HandleFunc("GET /health", healthH.Health)
	mux.HandleFunc("GET /health/live", healthH.Live)
	mux.HandleFunc("GET /health/ready", healthH.Ready)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg),
	)

	return chain(mux)
}
