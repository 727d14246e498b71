// Package search implements the multi-entity search orchestrator, the
// autocomplete suggestion path with its short-TTL cache, and the live
// filter catalog.
package search

import (
	"context"
	"log/slog"

	"github.com/studyhub/search-backend/internal/cache"
	"github.com/studyhub/search-backend/internal/config"
	"github.com/studyhub/search-backend/internal/domain"
)

type courseRepo interface {
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.Course, error)
	SuggestTitles(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctLevels(ctx context.Context) ([]string, error)
	DistinctTags(ctx context.Context) ([]string, error)
}

type lessonRepo interface {
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.Lesson, error)
	SuggestTitles(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
}

type articleRepo interface {
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.Article, error)
	SuggestTitles(ctx context.Context, query string, limit int) ([]domain.Suggestion, error)
	DistinctTags(ctx context.Context) ([]string, error)
}

type teacherRepo interface {
	Search(ctx context.Context, f domain.SearchFilter) ([]domain.Teacher, error)
}

// Service orchestrates search, suggestions, and the filter catalog.
type Service struct {
	log      *slog.Logger
	cfg      config.SearchConfig
	courses  courseRepo
	lessons  lessonRepo
	articles articleRepo
	teachers teacherRepo
	cache    cache.Cache
}

// NewService creates the search service.
func NewService(
	logger *slog.Logger,
	cfg config.SearchConfig,
	courses courseRepo,
	lessons lessonRepo,
	articles articleRepo,
	teachers teacherRepo,
	suggestCache cache.Cache,
) *Service {
	return &Service{
		log:      logger.With("service", "search"),
		cfg:      cfg,
		courses:  courses,
		lessons:  lessons,
		articles: articles,
		teachers: teachers,
		cache:    suggestCache,
	}
}

// clampLimit applies the default for unset limits and the ceiling for
// oversized ones.
func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
