package search

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/studyhub/search-backend/internal/config"
	"github.com/studyhub/search-backend/internal/domain"
)

// Input carries the parsed parameters of a search request. Types is the
// raw comma-separated entity list; empty means all entity types.
type Input struct {
	Query     string
	Types     string
	Limit     int
	Category  string
	Level     string
	Tags      []string
	TeacherID *uuid.UUID
}

// validate checks the input against the configured bounds and converts
// it into the per-entity filter plus the entity set to fan out to.
func (in Input) validate(cfg config.SearchConfig) (domain.SearchFilter, []domain.EntityType, error) {
	var zero domain.SearchFilter

	query := domain.SanitizeQuery(in.Query)

	hasStructured := in.Category != "" || in.Level != "" || len(in.Tags) > 0 || in.TeacherID != nil
	if in.Query == "" && !hasStructured {
		return zero, nil, domain.NewValidationError("query",
			"At least one search parameter is required")
	}

	if in.Query != "" {
		if n := utf8.RuneCountInString(query); n < cfg.QueryMinLength || n > cfg.QueryMaxLength {
			return zero, nil, domain.NewValidationError("q", fmt.Sprintf(
				"query length must be between %d and %d characters",
				cfg.QueryMinLength, cfg.QueryMaxLength))
		}
	}

	types, err := domain.ParseEntityTypes(in.Types)
	if err != nil {
		return zero, nil, err
	}

	filter := domain.SearchFilter{
		Query: query,
		Tags:  in.Tags,
		Limit: clampLimit(in.Limit, cfg.DefaultLimit, cfg.MaxLimit),
	}
	if in.Category != "" {
		filter.Category = &in.Category
	}
	if in.Level != "" {
		filter.Level = &in.Level
	}
	if in.TeacherID != nil {
		filter.TeacherID = in.TeacherID
	}

	return filter, types, nil
}
