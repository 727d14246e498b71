// Package lesson implements read-only lesson search queries. A lesson is
// visible only when both it and its parent course are published.
package lesson

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/studyhub/search-backend/internal/adapter/postgres"
	"github.com/studyhub/search-backend/internal/domain"
)

// Repo provides lesson search queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a lesson repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Search returns visible lessons matching the filter. Category, level,
// and teacher constraints apply through the parent course; lessons carry
// no tags, so a tag filter matches the parent course's tags.
func (r *Repo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Lesson, error) {
	b := postgres.Builder.
		Select("l.id", "l.course_id", "l.title", "l.summary", "l.created_at").
		From("lessons l").
		Join("courses c ON c.id = l.course_id").
		Where(sq.Eq{"l.is_published": true, "c.is_published": true}).
		Limit(uint64(f.Limit))

	if f.HasQuery() {
		b = b.Column(postgres.RankColumn("l.search_vector", f.Query)).
			Where(postgres.MatchClause("l.search_vector", f.Query)).
			OrderBy("rank DESC", "l.created_at DESC")
	} else {
		b = b.Column(postgres.ZeroRankColumn()).
			OrderBy("l.created_at DESC")
	}

	if f.Category != nil {
		b = b.Where(sq.Eq{"c.category": *f.Category})
	}
	if f.Level != nil {
		b = b.Where(sq.Eq{"c.level": *f.Level})
	}
	if len(f.Tags) > 0 {
		b = b.Where(sq.Expr("c.tags && ?", f.Tags))
	}
	if f.TeacherID != nil {
		b = b.Where(sq.Eq{"c.teacher_id": *f.TeacherID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lessons")
	}

	lessons := []domain.Lesson{}
	if err := pgxscan.Select(ctx, r.db, &lessons, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lessons")
	}
	return lessons, nil
}

// SuggestTitles returns title-only matches for autocomplete.
func (r *Repo) SuggestTitles(ctx context.Context, query string, limit int) ([]domain.Suggestion, error) {
	sql, args, err := postgres.Builder.
		Select("l.id", "l.title").
		From("lessons l").
		Join("courses c ON c.id = l.course_id").
		Where(sq.Eq{"l.is_published": true, "c.is_published": true}).
		Where(postgres.TitleMatchClause("l.title", query)).
		OrderBy("l.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lessons")
	}

	suggestions := []domain.Suggestion{}
	if err := pgxscan.Select(ctx, r.db, &suggestions, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lessons")
	}
	return suggestions, nil
}
