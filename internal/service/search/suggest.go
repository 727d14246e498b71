package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/studyhub/search-backend/internal/domain"
)

// Suggest returns title-only autocomplete hits for the query, served
// from the short-TTL cache when warm. Queries shorter than the minimum
// after sanitization yield empty suggestion lists, not an error.
//
// Correctness is identical warm or cold: cache errors degrade to a miss
// and are logged, never surfaced.
func (s *Service) Suggest(ctx context.Context, rawQuery string, limit int) (*Suggestions, error) {
	query := domain.SanitizeQuery(rawQuery)
	if utf8.RuneCountInString(query) < s.cfg.QueryMinLength {
		return emptySuggestions(), nil
	}

	limit = clampLimit(limit, s.cfg.SuggestDefaultLimit, s.cfg.SuggestMaxLimit)
	key := suggestCacheKey(query, limit)

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.WarnContext(ctx, "suggestion cache read failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	} else if ok {
		var out Suggestions
		if err := json.Unmarshal(cached, &out); err == nil {
			return &out, nil
		}
		s.log.WarnContext(ctx, "corrupt suggestion cache entry, recomputing",
			slog.String("key", key),
		)
	}

	out := s.computeSuggestions(ctx, query, limit)

	if payload, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.cfg.SuggestCacheTTL); err != nil {
			s.log.WarnContext(ctx, "suggestion cache write failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	return out, nil
}

// computeSuggestions fans the title query out to courses, lessons, and
// articles with the same per-entity isolation as Search: a failed entity
// yields an empty list.
func (s *Service) computeSuggestions(ctx context.Context, query string, limit int) *Suggestions {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FanoutTimeout)
	defer cancel()

	out := emptySuggestions()

	fail := func(entity string, err error) {
		s.log.ErrorContext(ctx, "entity suggestion failed",
			slog.String("entity", entity),
			slog.String("query", query),
			slog.String("error", err.Error()),
		)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hits, err := s.courses.SuggestTitles(gctx, query, limit)
		if err != nil {
			fail("courses", err)
			return nil
		}
		out.Courses = hits
		return nil
	})
	g.Go(func() error {
		hits, err := s.lessons.SuggestTitles(gctx, query, limit)
		if err != nil {
			fail("lessons", err)
			return nil
		}
		out.Lessons = hits
		return nil
	})
	g.Go(func() error {
		hits, err := s.articles.SuggestTitles(gctx, query, limit)
		if err != nil {
			fail("articles", err)
			return nil
		}
		out.Articles = hits
		return nil
	})
	_ = g.Wait()

	return out
}

// suggestCacheKey normalizes the query so repeated keystrokes differing
// only in case share an entry, and includes the limit so different
// limits don't alias.
func suggestCacheKey(query string, limit int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(query), limit)
}
