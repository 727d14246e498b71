package search

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/studyhub/search-backend/internal/domain"
)

// Search validates the input and fans the query out to the requested
// entity types in parallel, bounded by the configured fan-out timeout.
//
// Entity failures are isolated: a failed entity contributes an empty
// slice and its name in Result.Failed, and never corrupts the others.
func (s *Service) Search(ctx context.Context, in Input) (*Result, error) {
	filter, types, err := in.validate(s.cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.FanoutTimeout)
	defer cancel()

	res := &Result{
		Query:    filter.Query,
		Courses:  []domain.Course{},
		Lessons:  []domain.Lesson{},
		Articles: []domain.Article{},
		Teachers: []domain.Teacher{},
	}

	var mu sync.Mutex
	fail := func(et domain.EntityType, err error) {
		s.log.ErrorContext(ctx, "entity search failed",
			slog.String("entity", string(et)),
			slog.String("query", filter.Query),
			slog.String("error", err.Error()),
		)
		mu.Lock()
		res.Failed = append(res.Failed, string(et))
		mu.Unlock()
	}

	// Each goroutine writes its own envelope field, so only the Failed
	// list needs the mutex.
	g, gctx := errgroup.WithContext(ctx)
	for _, et := range types {
		g.Go(func() error {
			switch et {
			case domain.EntityCourses:
				courses, err := s.courses.Search(gctx, filter)
				if err != nil {
					fail(et, err)
					return nil
				}
				res.Courses = courses
			case domain.EntityLessons:
				lessons, err := s.lessons.Search(gctx, filter)
				if err != nil {
					fail(et, err)
					return nil
				}
				res.Lessons = lessons
			case domain.EntityArticles:
				articles, err := s.articles.Search(gctx, filter)
				if err != nil {
					fail(et, err)
					return nil
				}
				res.Articles = articles
			case domain.EntityTeachers:
				teachers, err := s.teachers.Search(gctx, filter)
				if err != nil {
					fail(et, err)
					return nil
				}
				res.Teachers = teachers
			}
			return nil
		})
	}
	_ = g.Wait() // goroutines report failures through res.Failed

	sort.Strings(res.Failed)
	return res, nil
}
