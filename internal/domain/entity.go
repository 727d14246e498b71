package domain

import (
	"time"

	"github.com/google/uuid"
)

// Course is a published course as seen by search. The platform's CRUD
// services own the table; this service only reads it.
type Course struct {
	ID          uuid.UUID `db:"id"          json:"id"`
	Title       string    `db:"title"       json:"title"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category"    json:"category"`
	Level       string    `db:"level"       json:"level"`
	Tags        []string  `db:"tags"        json:"tags"`
	TeacherID   uuid.UUID `db:"teacher_id"  json:"teacherId"`
	CreatedAt   time.Time `db:"created_at"  json:"createdAt"`
	Rank        float32   `db:"rank"        json:"rank"`
}

// Lesson is a published lesson inside a published course.
type Lesson struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	CourseID  uuid.UUID `db:"course_id"  json:"courseId"`
	Title     string    `db:"title"      json:"title"`
	Summary   string    `db:"summary"    json:"summary"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Rank      float32   `db:"rank"       json:"rank"`
}

// Article is a published (non-draft) article.
type Article struct {
	ID        uuid.UUID `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Excerpt   string    `db:"excerpt"    json:"excerpt"`
	Tags      []string  `db:"tags"       json:"tags"`
	AuthorID  uuid.UUID `db:"author_id"  json:"authorId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Rank      float32   `db:"rank"       json:"rank"`
}

// Teacher is a user with the teacher role.
type Teacher struct {
	ID          uuid.UUID `db:"id"           json:"id"`
	DisplayName string    `db:"display_name" json:"displayName"`
	Bio         string    `db:"bio"          json:"bio"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
	Rank        float32   `db:"rank"         json:"rank"`
}

// Suggestion is a title-only autocomplete hit.
type Suggestion struct {
	ID    uuid.UUID `db:"id"    json:"id"`
	Title string    `db:"title" json:"title"`
}
