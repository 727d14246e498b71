// Package article implements read-only article search queries. Draft
// articles are never visible.
package article

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/studyhub/search-backend/internal/adapter/postgres"
	"github.com/studyhub/search-backend/internal/domain"
)

// Repo provides article search queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates an article repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Search returns published articles matching the filter. Articles carry
// no category or level, so those constraints exclude all articles when
// set; tags and author (teacher) apply directly.
func (r *Repo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Article, error) {
	// Category/level cannot match any article. Returning early keeps the
	// AND-combination semantics without issuing a query that is known to
	// be empty.
	if f.Category != nil || f.Level != nil {
		return []domain.Article{}, nil
	}

	b := postgres.Builder.
		Select("id", "title", "excerpt", "tags", "author_id", "created_at").
		From("articles").
		Where(sq.Eq{"status": "published"}).
		Limit(uint64(f.Limit))

	if f.HasQuery() {
		b = b.Column(postgres.RankColumn("search_vector", f.Query)).
			Where(postgres.MatchClause("search_vector", f.Query)).
			OrderBy("rank DESC", "created_at DESC")
	} else {
		b = b.Column(postgres.ZeroRankColumn()).
			OrderBy("created_at DESC")
	}

	if len(f.Tags) > 0 {
		b = b.Where(sq.Expr("tags && ?", f.Tags))
	}
	if f.TeacherID != nil {
		b = b.Where(sq.Eq{"author_id": *f.TeacherID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "articles")
	}

	articles := []domain.Article{}
	if err := pgxscan.Select(ctx, r.db, &articles, sql, args...); err != nil {
		return nil, postgres.MapError(err, "articles")
	}
	return articles, nil
}

// SuggestTitles returns title-only matches for autocomplete.
func (r *Repo) SuggestTitles(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	sql, args, err := postgres.Builder.
		Select("id", "title").
		From("articles").
		Where(sq.Eq{"status": "published"}).
		Where(postgres.TitleMatchClause("title", query)).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "articles")
	}

	suggestions := []domain.Suggestion{}
	if err := pgxscan.Select(ctx, r.db, &suggestions, sql, args...); err != nil {
		return nil, postgres.MapError(err, "articles")
	}
	return suggestions, nil
}

// DistinctTags returns tag values currently used by published articles,
// alphabetically.
func (r *Repo) DistinctTags(ctx context.Context) ([]string, error) {
	sql, args, err := postgres.Builder.
		Select("DISTINCT unnest(tags) AS tag").
		From("articles").
		Where(sq.Eq{"status": "published"}).
		OrderBy("tag ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "articles")
	}

	tags := []string{}
	if err := pgxscan.Select(ctx, r.db, &tags, sql, args...); err != nil {
		return nil, postgres.MapError(err, "articles")
	}
	return tags, nil
}
