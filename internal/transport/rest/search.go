package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/studyhub/search-backend/internal/domain"
	"github.com/studyhub/search-backend/internal/service/search"
)

type searchService interface {
	Search(ctx context.Context, in search.Input) (*search.Result, error)
	Suggest(ctx context.Context, query string, limit int) (*search.Suggestions, error)
	Filters(ctx context.Context) (*search.FilterCatalog, error)
}

// SearchHandler serves the search, suggestion, and filter endpoints.
type SearchHandler struct {
	log *slog.Logger
	svc searchService
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(logger *slog.Logger, svc searchService) *SearchHandler {
	return &SearchHandler{log: logger, svc: svc}
}

// AppliedFilters echoes the structured filters a search was run with.
type AppliedFilters struct {
	Type      string   `json:"type,omitempty"`
	Category  string   `json:"category,omitempty"`
	Level     string   `json:"level,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	TeacherID string   `json:"teacherId,omitempty"`
}

// SearchResponse is the 200 body of GET /api/v1/search.
type SearchResponse struct {
	Success bool           `json:"success"`
	Query   string         `json:"query"`
	Filters AppliedFilters `json:"filters"`
	Results *search.Result `json:"results"`
	Failed  []string       `json:"failed,omitempty"`
}

// SuggestResponse is the 200 body of GET /api/v1/search/suggestions.
type SuggestResponse struct {
	Success     bool                `json:"success"`
	Suggestions *search.Suggestions `json:"suggestions"`
}

// FiltersResponse is the 200 body of GET /api/v1/search/filters.
type FiltersResponse struct {
	Success bool                  `json:"success"`
	Filters *search.FilterCatalog `json:"filters"`
}

// Search handles GET /api/v1/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	in, err := parseSearchInput(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Search(r.Context(), in)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Success: true,
		Query:   result.Query,
		Filters: appliedFilters(in),
		Results: result,
		Failed:  result.Failed,
	})
}

// Suggest handles GET /api/v1/search/suggestions. The rate limiter sits
// in front of this handler as middleware.
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, r, h.log, domain.NewValidationError("q", "Query parameter is required"))
		return
	}

	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	suggestions, err := h.svc.Suggest(r.Context(), query, limit)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, SuggestResponse{Success: true, Suggestions: suggestions})
}

// Filters handles GET /api/v1/search/filters.
func (h *SearchHandler) Filters(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.svc.Filters(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, FiltersResponse{Success: true, Filters: catalog})
}

func parseSearchInput(r *http.Request) (search.Input, error) {
	q := r.URL.Query()

	in := search.Input{
		Query:    q.Get("q"),
		Types:    q.Get("type"),
		Category: q.Get("category"),
		Level:    q.Get("level"),
	}

	limit, err := parseLimit(r)
	if err != nil {
		return search.Input{}, err
	}
	in.Limit = limit

	if raw := q.Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				in.Tags = append(in.Tags, tag)
			}
		}
	}

	if raw := q.Get("teacherId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return search.Input{}, domain.NewValidationError("teacherId", "must be a valid UUID")
		}
		in.TeacherID = &id
	}

	return in, nil
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domain.NewValidationError("limit", "must be a non-negative integer")
	}
	return limit, nil
}

func appliedFilters(in search.Input) AppliedFilters {
	applied := AppliedFilters{
		Type:     in.Types,
		Category: in.Category,
		Level:    in.Level,
		Tags:     in.Tags,
	}
	if in.TeacherID != nil {
		applied.TeacherID = in.TeacherID.String()
	}
	return applied
}
