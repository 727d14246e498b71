// Package teacher implements read-only teacher profile search. Teachers
// are rows of the platform's users table with the teacher role.
package teacher

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/studyhub/search-backend/internal/adapter/postgres"
	"github.com/studyhub/search-backend/internal/domain"
)

// Repo provides teacher search queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a teacher repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Search returns active teachers matching the filter. Category, level,
// and tags don't apply to profiles; a teacherId filter narrows to that
// single profile.
func (r *Repo) Search(ctx context.Context, f domain.SearchFilter) ([]domain.Teacher, error) {
	if f.Category != nil || f.Level != nil || len(f.Tags) > 0 {
		return []domain.Teacher{}, nil
	}

	b := postgres.Builder.
		Select("id", "display_name", "bio", "created_at").
		From("users").
		Where(sq.Eq{"role": "teacher", "is_active": true}).
		Limit(uint64(f.Limit))

	if f.HasQuery() {
		b = b.Column(postgres.RankColumn("search_vector", f.Query)).
			Where(postgres.MatchClause("search_vector", f.Query)).
			OrderBy("rank DESC", "created_at DESC")
	} else {
		b = b.Column(postgres.ZeroRankColumn()).
			OrderBy("created_at DESC")
	}

	if f.TeacherID != nil {
		b = b.Where(sq.Eq{"id": *f.TeacherID})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "teachers")
	}

	teachers := []domain.Teacher{}
	if err := pgxscan.Select(ctx, r.db, &teachers, sql, args...); err != nil {
		return nil, postgres.MapError(err, "teachers")
	}
	return teachers, nil
}
