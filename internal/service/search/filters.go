package search

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// Filters returns the filter values currently in use by visible
// entities: course categories and levels, and the union of course and
// article tags. The catalog is computed live, so new values appear as
// soon as a published entity uses them and retired values disappear
// with their last reference.
func (s *Service) Filters(ctx context.Context) (*FilterCatalog, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.FanoutTimeout)
	defer cancel()

	var (
		categories  []string
		levels      []string
		courseTags  []string
		articleTags []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if categories, err = s.courses.DistinctCategories(gctx); err != nil {
			return fmt.Errorf("categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if levels, err = s.courses.DistinctLevels(gctx); err != nil {
			return fmt.Errorf("levels: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if courseTags, err = s.courses.DistinctTags(gctx); err != nil {
			return fmt.Errorf("course tags: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if articleTags, err = s.articles.DistinctTags(gctx); err != nil {
			return fmt.Errorf("article tags: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("filter catalog: %w", err)
	}

	// mergeSorted also guarantees non-nil slices for the JSON envelope.
	return &FilterCatalog{
		Categories: mergeSorted(categories, nil),
		Levels:     mergeSorted(levels, nil),
		Tags:       mergeSorted(courseTags, articleTags),
	}, nil
}

// mergeSorted unions two sorted string slices, deduplicated.
func mergeSorted(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	merged := make([]string, 0, len(a)+len(b))
	for _, s := range a {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	for _, s := range b {
		if !seen[s] {
			seen[s] = true
			merged = append(merged, s)
		}
	}
	sort.Strings(merged)
	return merged
}
