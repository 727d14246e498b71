package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhub/search-backend/internal/cache"
	"github.com/studyhub/search-backend/internal/config"
	"github.com/studyhub/search-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Fakes. Call counters double as data-access spies for the cache tests.
// ---------------------------------------------------------------------------

type fakeCourseRepo struct {
	searchCalls   int
	suggestCalls  int
	distinctCalls int

	gotFilter   domain.SearchFilter
	gotQuery    string
	gotLimit    int
	courses     []domain.Course
	suggestions []domain.Suggestion
	categories  []string
	levels      []string
	tags        []string
	err         error
}

func (f *fakeCourseRepo) Search(_ context.Context, filter domain.SearchFilter) ([]domain.Course, error) {
	f.searchCalls++
	f.gotFilter = filter
	return f.courses, f.err
}

func (f *fakeCourseRepo) SuggestTitles(_ context.Context, query string, limit int) ([]domain.Suggestion, error) {
	f.suggestCalls++
	f.gotQuery = query
	f.gotLimit = limit
	return f.suggestions, f.err
}

func (f *fakeCourseRepo) DistinctCategories(context.Context) ([]string, error) {
	f.distinctCalls++
	return f.categories, f.err
}

func (f *fakeCourseRepo) DistinctLevels(context.Context) ([]string, error) {
	f.distinctCalls++
	return f.levels, f.err
}

func (f *fakeCourseRepo) DistinctTags(context.Context) ([]string, error) {
	f.distinctCalls++
	return f.tags, f.err
}

type fakeLessonRepo struct {
	searchCalls  int
	suggestCalls int

	lessons     []domain.Lesson
	suggestions []domain.Suggestion
	err         error
}

func (f *fakeLessonRepo) Search(context.Context, domain.SearchFilter) ([]domain.Lesson, error) {
	f.searchCalls++
	return f.lessons, f.err
}

func (f *fakeLessonRepo) SuggestTitles(context.Context, string, int) ([]domain.Suggestion, error) {
	f.suggestCalls++
	return f.suggestions, f.err
}

type fakeArticleRepo struct {
	searchCalls  int
	suggestCalls int

	articles    []domain.Article
	suggestions []domain.Suggestion
	tags        []string
	err         error
}

func (f *fakeArticleRepo) Search(context.Context, domain.SearchFilter) ([]domain.Article, error) {
	f.searchCalls++
	return f.articles, f.err
}

func (f *fakeArticleRepo) SuggestTitles(context.Context, string, int) ([]domain.Suggestion, error) {
	f.suggestCalls++
	return f.suggestions, f.err
}

func (f *fakeArticleRepo) DistinctTags(context.Context) ([]string, error) {
	return f.tags, f.err
}

type fakeTeacherRepo struct {
	searchCalls int

	teachers []domain.Teacher
	err      error
}

func (f *fakeTeacherRepo) Search(context.Context, domain.SearchFilter) ([]domain.Teacher, error) {
	f.searchCalls++
	return f.teachers, f.err
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("cache down")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("cache down")
}

// ---------------------------------------------------------------------------
// Harness
// ---------------------------------------------------------------------------

type fixture struct {
	svc      *Service
	courses  *fakeCourseRepo
	lessons  *fakeLessonRepo
	articles *fakeArticleRepo
	teachers *fakeTeacherRepo
}

func testConfig() config.SearchConfig {
	return config.SearchConfig{
		MaxLimit:             50,
		DefaultLimit:         20,
		SuggestMaxLimit:      10,
		SuggestDefaultLimit:  5,
		SuggestCacheTTL:      time.Minute,
		SuggestRatePerMinute: 30,
		QueryMinLength:       2,
		QueryMaxLength:       100,
		FanoutTimeout:        3 * time.Second,
	}
}

func newFixture(t *testing.T, c cache.Cache) *fixture {
	t.Helper()
	if c == nil {
		mem := cache.NewMemory(time.Minute)
		t.Cleanup(mem.Stop)
		c = mem
	}
	f := &fixture{
		courses:  &fakeCourseRepo{},
		lessons:  &fakeLessonRepo{},
		articles: &fakeArticleRepo{},
		teachers: &fakeTeacherRepo{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.svc = NewService(logger, testConfig(), f.courses, f.lessons, f.articles, f.teachers, c)
	return f
}

func someCourses(n int) []domain.Course {
	courses := make([]domain.Course, n)
	for i := range courses {
		courses[i] = domain.Course{
			ID:        uuid.New(),
			Title:     "Algebra",
			Category:  "MATH",
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Hour),
			Rank:      float32(n - i),
		}
	}
	return courses
}

// ---------------------------------------------------------------------------
// Search
// ---------------------------------------------------------------------------

func TestSearch_RequiresAtLeastOneParameter(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Search(context.Background(), Input{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "At least one search parameter is required")

	// Fail fast: no data access may happen on validation errors.
	assert.Zero(t, f.courses.searchCalls)
	assert.Zero(t, f.lessons.searchCalls)
	assert.Zero(t, f.articles.searchCalls)
	assert.Zero(t, f.teachers.searchCalls)
}

func TestSearch_QueryLengthBounds(t *testing.T) {
	f := newFixture(t, nil)

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	for _, q := range []string{"a", string(long), "&&"} {
		_, err := f.svc.Search(context.Background(), Input{Query: q})
		assert.ErrorIs(t, err, domain.ErrValidation, "query %q", q)
	}
	assert.Zero(t, f.courses.searchCalls)
}

func TestSearch_MatchingCoursesOnly(t *testing.T) {
	f := newFixture(t, nil)
	f.courses.courses = someCourses(3)

	res, err := f.svc.Search(context.Background(), Input{
		Query: "algebra",
		Types: "courses",
		Limit: 5,
	})
	require.NoError(t, err)

	assert.Len(t, res.Courses, 3)
	assert.Empty(t, res.Lessons)
	assert.Empty(t, res.Articles)
	assert.Empty(t, res.Teachers)
	assert.Empty(t, res.Failed)

	// Unrequested entity types are never queried.
	assert.Equal(t, 1, f.courses.searchCalls)
	assert.Zero(t, f.lessons.searchCalls)
	assert.Zero(t, f.articles.searchCalls)
	assert.Zero(t, f.teachers.searchCalls)

	assert.Equal(t, "algebra", f.courses.gotFilter.Query)
	assert.Equal(t, 5, f.courses.gotFilter.Limit)
}

func TestSearch_SanitizesQueryBeforeFanout(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Search(context.Background(), Input{
		Query: `alg&ebra (intro)`,
		Types: "courses",
	})
	require.NoError(t, err)
	assert.Equal(t, "algebra intro", f.courses.gotFilter.Query)
}

func TestSearch_CategoryOnlyIsUnranked(t *testing.T) {
	f := newFixture(t, nil)
	f.courses.courses = someCourses(2)

	res, err := f.svc.Search(context.Background(), Input{Category: "MATH"})
	require.NoError(t, err)

	require.NotNil(t, f.courses.gotFilter.Category)
	assert.Equal(t, "MATH", *f.courses.gotFilter.Category)
	assert.False(t, f.courses.gotFilter.HasQuery())
	assert.Len(t, res.Courses, 2)
	assert.Empty(t, res.Query)
}

func TestSearch_DefaultsToAllTypes(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Search(context.Background(), Input{Query: "history"})
	require.NoError(t, err)

	assert.Equal(t, 1, f.courses.searchCalls)
	assert.Equal(t, 1, f.lessons.searchCalls)
	assert.Equal(t, 1, f.articles.searchCalls)
	assert.Equal(t, 1, f.teachers.searchCalls)
}

func TestSearch_LimitClamping(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Search(context.Background(), Input{Query: "go", Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 50, f.courses.gotFilter.Limit, "limit above max clamps to max")

	_, err = f.svc.Search(context.Background(), Input{Query: "go"})
	require.NoError(t, err)
	assert.Equal(t, 20, f.courses.gotFilter.Limit, "unset limit takes default")
}

func TestSearch_PartialFailureIsolated(t *testing.T) {
	f := newFixture(t, nil)
	f.courses.courses = someCourses(1)
	f.lessons.err = errors.New("lessons table on fire")

	res, err := f.svc.Search(context.Background(), Input{Query: "algebra"})
	require.NoError(t, err)

	assert.Equal(t, []string{"lessons"}, res.Failed)
	assert.Empty(t, res.Lessons)
	assert.Len(t, res.Courses, 1, "healthy entities are unaffected")
}

// ---------------------------------------------------------------------------
// Suggestions
// ---------------------------------------------------------------------------

func TestSuggest_ShortQueryReturnsEmpty(t *testing.T) {
	f := newFixture(t, nil)

	for _, q := range []string{"", "a", "&&", " ! "} {
		out, err := f.svc.Suggest(context.Background(), q, 5)
		require.NoError(t, err, "query %q", q)
		assert.Empty(t, out.Courses)
		assert.Empty(t, out.Lessons)
		assert.Empty(t, out.Articles)
	}
	assert.Zero(t, f.courses.suggestCalls, "short queries must not reach the store")
}

func TestSuggest_CacheHitSkipsDataAccess(t *testing.T) {
	f := newFixture(t, nil)
	f.courses.suggestions = []domain.Suggestion{{ID: uuid.New(), Title: "Algebra Basics"}}

	first, err := f.svc.Suggest(context.Background(), "alge", 5)
	require.NoError(t, err)
	require.Equal(t, 1, f.courses.suggestCalls)
	require.Equal(t, 1, f.lessons.suggestCalls)
	require.Equal(t, 1, f.articles.suggestCalls)

	second, err := f.svc.Suggest(context.Background(), "alge", 5)
	require.NoError(t, err)

	assert.Equal(t, first, second, "warm and cold results must be identical")
	assert.Equal(t, 1, f.courses.suggestCalls, "second call must be served from cache")
	assert.Equal(t, 1, f.lessons.suggestCalls)
	assert.Equal(t, 1, f.articles.suggestCalls)
}

func TestSuggest_CacheKeyIncludesLimit(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Suggest(context.Background(), "alge", 5)
	require.NoError(t, err)
	_, err = f.svc.Suggest(context.Background(), "alge", 7)
	require.NoError(t, err)

	assert.Equal(t, 2, f.courses.suggestCalls, "different limits must not share an entry")
}

func TestSuggest_LimitClamping(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Suggest(context.Background(), "query", 99)
	require.NoError(t, err)
	assert.Equal(t, 10, f.courses.gotLimit, "limit above max clamps to max")

	_, err = f.svc.Suggest(context.Background(), "query", 0)
	require.NoError(t, err)
	assert.Equal(t, 5, f.courses.gotLimit, "unset limit takes default")
}

func TestSuggest_EntityFailureYieldsEmptyList(t *testing.T) {
	f := newFixture(t, nil)
	f.courses.suggestions = []domain.Suggestion{{ID: uuid.New(), Title: "Algebra"}}
	f.lessons.err = errors.New("boom")

	out, err := f.svc.Suggest(context.Background(), "alge", 5)
	require.NoError(t, err)
	assert.Len(t, out.Courses, 1)
	assert.Empty(t, out.Lessons)
}

func TestSuggest_CacheErrorsDegradeToMiss(t *testing.T) {
	f := newFixture(t, failingCache{})
	f.courses.suggestions = []domain.Suggestion{{ID: uuid.New(), Title: "Algebra"}}

	out, err := f.svc.Suggest(context.Background(), "alge", 5)
	require.NoError(t, err, "cache failures must never surface")
	assert.Len(t, out.Courses, 1)

	_, err = f.svc.Suggest(context.Background(), "alge", 5)
	require.NoError(t, err)
	assert.Equal(t, 2, f.courses.suggestCalls, "broken cache means every call recomputes")
}

// ---------------------------------------------------------------------------
// Filter catalog
// ---------------------------------------------------------------------------

func TestFilters_MergesTagSources(t *testing.T) {
	f := newFixture(t, nil)
	f.courses.categories = []string{"ART", "MATH"}
	f.courses.levels = []string{"advanced", "beginner"}
	f.courses.tags = []string{"algebra", "drawing"}
	f.articles.tags = []string{"algebra", "essay"}

	got, err := f.svc.Filters(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"ART", "MATH"}, got.Categories)
	assert.Equal(t, []string{"advanced", "beginner"}, got.Levels)
	assert.Equal(t, []string{"algebra", "drawing", "essay"}, got.Tags)
}

func TestFilters_ErrorPropagates(t *testing.T) {
	f := newFixture(t, nil)
	f.articles.err = errors.New("boom")

	_, err := f.svc.Filters(context.Background())
	require.Error(t, err)
}
