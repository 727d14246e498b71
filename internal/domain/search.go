package domain

import (
	"strings"

	"github.com/google/uuid"
)

// EntityType identifies one of the searchable collections.
type EntityType string

const (
	EntityCourses  EntityType = "courses"
	EntityLessons  EntityType = "lessons"
	EntityArticles EntityType = "articles"
	EntityTeachers EntityType = "teachers"
)

// AllEntityTypes returns the full entity set in envelope order.
func AllEntityTypes() []EntityType {
	return []EntityType{EntityCourses, EntityLessons, EntityArticles, EntityTeachers}
}

// ParseEntityTypes parses a comma-separated type list ("courses,lessons").
// An empty string means all types. Unknown names produce a validation error.
func ParseEntityTypes(raw string) ([]EntityType, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AllEntityTypes(), nil
	}

	seen := make(map[EntityType]bool, 4)
	var types []EntityType
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		et := EntityType(strings.ToLower(part))
		switch et {
		case EntityCourses, EntityLessons, EntityArticles, EntityTeachers:
			if !seen[et] {
				seen[et] = true
				types = append(types, et)
			}
		default:
			return nil, NewValidationError("type", "unknown entity type: "+part)
		}
	}
	if len(types) == 0 {
		return AllEntityTypes(), nil
	}
	return types, nil
}

// SearchFilter carries the sanitized free-text query and the structured
// filters for one fan-out. A zero Query means an unranked listing.
type SearchFilter struct {
	Query     string
	Category  *string
	Level     *string
	Tags      []string
	TeacherID *uuid.UUID
	Limit     int
}

// HasQuery reports whether a free-text predicate applies.
func (f SearchFilter) HasQuery() bool {
	return f.Query != ""
}

// HasStructuredFilter reports whether any structured constraint applies.
func (f SearchFilter) HasStructuredFilter() bool {
	return f.Category != nil || f.Level != nil || len(f.Tags) > 0 || f.TeacherID != nil
}
