package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTeacher creates an active teacher user and returns its id.
func SeedTeacher(t *testing.T, pool *pgxpool.Pool, displayName string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, display_name, bio, role, is_active)
		 VALUES ($1, $2, $3, $4, 'teacher', TRUE)`,
		id, "teacher-"+uniqueSuffix()+"@example.com", displayName, "Bio of "+displayName,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTeacher insert user: %v", err)
	}
	return id
}

// CourseSeed describes a course row for seeding. Zero values get sensible
// defaults; Tags defaults to empty.
type CourseSeed struct {
	Title       string
	Description string
	Category    string
	Level       string
	Tags        []string
	TeacherID   uuid.UUID
	Published   bool
}

// SeedCourse inserts a course and returns its id.
func SeedCourse(t *testing.T, pool *pgxpool.Pool, seed CourseSeed) uuid.UUID {
	t.Helper()

	if seed.Tags == nil {
		seed.Tags = []string{}
	}

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO courses (id, title, description, category, level, tags, teacher_id, is_published)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, seed.Title, seed.Description, seed.Category, seed.Level, seed.Tags, seed.TeacherID, seed.Published,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCourse insert course: %v", err)
	}
	return id
}

// SeedLesson inserts a published lesson under the given course and returns its id.
func SeedLesson(t *testing.T, pool *pgxpool.Pool, courseID uuid.UUID, title, summary string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO lessons (id, course_id, title, summary, is_published)
		 VALUES ($1, $2, $3, $4, TRUE)`,
		id, courseID, title, summary,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLesson insert lesson: %v", err)
	}
	return id
}

// ArticleSeed describes an article row for seeding.
type ArticleSeed struct {
	Title    string
	Excerpt  string
	Tags     []string
	AuthorID uuid.UUID
	Status   string // defaults to "published"
}

// SeedArticle inserts an article and returns its id.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, seed ArticleSeed) uuid.UUID {
	t.Helper()

	if seed.Tags == nil {
		seed.Tags = []string{}
	}
	if seed.Status == "" {
		seed.Status = "published"
	}

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO articles (id, title, excerpt, tags, author_id, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, seed.Title, seed.Excerpt, seed.Tags, seed.AuthorID, seed.Status,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle insert article: %v", err)
	}
	return id
}
