// Package course implements read-only course search queries. The courses
// table is owned by the platform's course service; only published rows
// are visible here.
package course

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/studyhub/search-backend/internal/adapter/postgres"
	"github.com/studyhub/search-backend/internal/domain"
)

// Repo provides course search queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a course repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Search returns published courses matching the filter, ranked by text
// relevance when a query is present, otherwise newest first.
func (r *Repo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Course, error) {
	b := postgres.Builder.
		Select("id", "title", "description", "category", "level", "tags", "teacher_id", "created_at").
		From("courses").
		Where(sq.Eq{"is_published": true}).
		Limit(uint64(f.Limit))

	if f.HasQuery() {
		b = b.Column(postgres.RankColumn("search_vector", f.Query)).
			Where(postgres.MatchClause("search_vector", f.Query)).
			OrderBy("rank DESC", "created_at DESC")
	} else {
		b = b.Column(postgres.ZeroRankColumn()).
			OrderBy("created_at DESC")
	}

	if f.Category != nil {
		b = b.Where(sq.Eq{"category": *f.Category})
	}
	if f.Level != nil {
		b = b.Where(sq.Eq{"level": *f.Level})
	}
	if len(f.Tags) > 0 {
		b = b.Where(sq.Expr("tags && ?", f.Tags))
	}
	if f.TeacherID != nil {
		b = b.Where(sq.Eq{"teacher_id": *f.TeacherID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "courses")
	}

	courses := []domain.Course{}
	if err := pgxscan.Select(ctx, r.db, &courses, sql, args...); err != nil {
		return nil, postgres.MapError(err, "courses")
	}
	return courses, nil
}

// SuggestTitles returns title-only matches for autocomplete.
func (r *Repo) SuggestTitles(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	sql, args, err := postgres.Builder.
		Select("id", "title").
		From("courses").
		Where(sq.Eq{"is_published": true}).
		Where(postgres.TitleMatchClause("title", query)).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "courses")
	}

	suggestions := []domain.Suggestion{}
	if err := pgxscan.Select(ctx, r.db, &suggestions, sql, args...); err != nil {
		return nil, postgres.MapError(err, "courses")
	}
	return suggestions, nil
}

// DistinctCategories returns category values currently used by published
// courses, alphabetically.
func (r *Repo) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "category")
}

// DistinctLevels returns level values currently used by published
// courses, alphabetically.
func (r *Repo) DistinctLevels(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, "level")
}

// DistinctTags returns tag values currently used by published courses,
// alphabetically.
func (r *Repo) DistinctTags(ctx context.Context) ([]string, error) {
	sql, args, err := postgres.Builder.
		Select("DISTINCT unnest(tags) AS tag").
		From("courses").
		Where(sq.Eq{"is_published": true}).
		OrderBy("tag ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "courses")
	}

	tags := []string{}
	if err := pgxscan.Select(ctx, r.db, &tags, sql, args...); err != nil {
		return nil, postgres.MapError(err, "courses")
	}
	return tags, nil
}

func (r *Repo) distinctColumn(ctx context.Context, column string) ([]string, error) {
	sql, args, err := postgres.Builder.
		Select("DISTINCT "+column).
		From("courses").
		Where(sq.Eq{"is_published": true}).
		Where(sq.NotEq{column: ""}).
		OrderBy(column + " ASC").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "courses")
	}

	values := []string{}
	if err := pgxscan.Select(ctx, r.db, &values, sql, args...); err != nil {
		return nil, postgres.MapError(err, "courses")
	}
	return values, nil
}
