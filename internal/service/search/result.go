package search

import (
	"github.com/studyhub/search-backend/internal/domain"
)

// Result is the merged envelope of one search fan-out. Entity slices are
// always non-nil; entities the caller did not request stay empty. Failed
// lists the entity types whose queries errored or timed out — their
// slices are empty and the rest of the envelope is still valid.
type Result struct {
	Query    string           `json:"-"`
	Courses  []domain.Course  `json:"courses"`
	Lessons  []domain.Lesson  `json:"lessons"`
	Articles []domain.Article `json:"articles"`
	Teachers []domain.Teacher `json:"teachers"`
	Failed   []string         `json:"-"`
}

// Suggestions is the title-only autocomplete envelope.
type Suggestions struct {
	Courses  []domain.Suggestion `json:"courses"`
	Lessons  []domain.Suggestion `json:"lessons"`
	Articles []domain.Suggestion `json:"articles"`
}

func emptySuggestions() *Suggestions {
	return &Suggestions{
		Courses:  []domain.Suggestion{},
		Lessons:  []domain.Suggestion{},
		Articles: []domain.Suggestion{},
	}
}

// FilterCatalog is the set of filter values currently in use by visible
// entities.
type FilterCatalog struct {
	Categories []string `json:"categories"`
	Levels     []string `json:"levels"`
	Tags       []string `json:"tags"`
}
