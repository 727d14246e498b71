//go:build integration

package lesson_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/studyhub/search-backend/internal/adapter/postgres/lesson"
	"github.com/studyhub/search-backend/internal/adapter/postgres/testhelper"
	"github.com/studyhub/search-backend/internal/domain"
)

func TestRepo_Search_InheritsCourseFilters(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := lesson.New(pool)
	ctx := context.Background()

	category := "cat-" + uuid.New().String()[:8]
	teacherID := testhelper.SeedTeacher(t, pool, "Lesson Teacher")
	courseID := testhelper.SeedCourse(t, pool, testhelper.CourseSeed{
		Title: "Parent", Category: category, TeacherID: teacherID, Published: true,
	})
	otherCourseID := testhelper.SeedCourse(t, pool, testhelper.CourseSeed{
		Title: "Other Parent", Category: "elsewhere", TeacherID: teacherID, Published: true,
	})

	wantID := testhelper.SeedLesson(t, pool, courseID, "In Category", "summary")
	testhelper.SeedLesson(t, pool, otherCourseID, "Out of Category", "summary")

	got, err := repo.Search(ctx, domain.SearchFilter{Category: &category, Limit: 10})
	if err != nil {
		t.Fatalf("Search: unexpected error: %v", err)
	}

	if len(got) != 1 || got[0].ID != wantID {
		t.Fatalf("expected only lesson %s, got %v", wantID, got)
	}
	if got[0].CourseID != courseID {
		t.Errorf("expected course id %s, got %s", courseID, got[0].CourseID)
	}
}

func TestRepo_Search_HiddenWhenCourseUnpublished(t *testing.T) {
	t.Parallel()

	pool := testhelper.SetupTestDB(t)
	repo := lesson.New(pool)
	ctx := context.Background()

	token := "ls" + uuid.New().String()[:8]
	teacherID := testhelper.SeedTeacher(t, pool, "Draft Teacher")
	draftCourseID := testhelper.SeedCourse(t, pool, testhelper.CourseSeed{
		Title: "Draft Course", TeacherID: teacherID, Published: false,
	})
	testhelper.SeedLesson(t, pool, draftCourseID, "Lesson "+token, "summary")

	got, err := repo.Search(ctx, domain.SearchFilter{Query: token, Limit: 10})
	if err != nil {
		t.Fatalf("Search: unexpected error: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("expected no lessons from unpublished course, got %d", len(got))
	}
}
