package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/talentflow/pkg/model"
)

const courseCols = `course_id, title, description, category, final_quiz_topic, created_at`

func scanCourse(row pgx.Row) (model.Course, error) {
	var c model.Course
	err := row.Scan(&c.CourseID, &c.Title, &c.Description, &c.Category, &c.FinalQuizTopic, &c.CreatedAt)
	return c, err
}

func (r *Repository) GetCourseByID(ctx context.Context, courseID int64) (model.Course, error) {
	q := "SELECT " + courseCols + " FROM courses WHERE course_id = $1"
	c, err := scanCourse(r.db.QueryRow(ctx, q, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Course{}, fmt.Errorf("course %d: %w", courseID, ErrNotFound)
		}
		return model.Course{}, fmt.Errorf("scan course: %w", err)
	}
	return c, nil
}

// SearchCoursesBySkills matches courses whose title, description or quiz
// topic mention any of the given skills. Used to recommend courses that
// cover a candidate's skill gaps.
func (r *Repository) SearchCoursesBySkills(ctx context.Context, skills []string) ([]model.Course, error) {
	if len(skills) == 0 {
		return nil, nil
	}

	var clauses []string
	args := []interface{}{}
	for _, skill := range skills {
		n := len(args) + 1
		clauses = append(clauses, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR final_quiz_topic ILIKE $%d)", n, n, n))
		args = append(args, "%"+skill+"%")
	}

	q := "SELECT " + courseCols + " FROM courses WHERE " +
		strings.Join(clauses, " OR ") + " ORDER BY title ASC"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}
	defer rows.Close()

	var out []model.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// TouchCourseProgress records that the user opened a course, creating the
// progress row if needed.
func (r *Repository) TouchCourseProgress(ctx context.Context, userID string, courseID int64) error {
	const q = `
INSERT INTO course_progress (user_id, course_id)
VALUES ($1, $2)
ON CONFLICT (user_id, course_id) DO UPDATE SET last_accessed = now()
`
	if _, err := r.db.Exec(ctx, q, userID, courseID); err != nil {
		return fmt.Errorf("touch course progress: %w", err)
	}
	return nil
}

// MarkQuizPassed flags the final quiz as passed for every course of the
// user's whose quiz topic (or title) matches the submitted quiz topic.
// Passing the final quiz also completes the course.
func (r *Repository) MarkQuizPassed(ctx context.Context, userID, topic string) (int64, error) {
	const q = `
UPDATE course_progress SET final_quiz_passed = TRUE, is_completed = TRUE, last_accessed = now()
WHERE user_id = $1 AND course_id IN (
	SELECT course_id FROM courses WHERE final_quiz_topic ILIKE $2 OR title ILIKE $2
)
`
	tag, err := r.db.Exec(ctx, q, userID, topic)
	if err != nil {
		return 0, fmt.Errorf("mark quiz passed: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ListCoursesWithProgress(ctx context.Context, userID string) ([]model.CourseWithProgress, error) {
	const q = `
SELECT c.course_id, c.title, c.description, c.category, c.final_quiz_topic, c.created_at,
	COALESCE(p.final_quiz_passed, FALSE), COALESCE(p.is_completed, FALSE)
FROM courses c
LEFT JOIN course_progress p ON p.course_id = c.course_id AND p.user_id = $1
ORDER BY c.title ASC
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query courses with progress: %w", err)
	}
	defer rows.Close()

	var out []model.CourseWithProgress
	for rows.Next() {
		var c model.CourseWithProgress
		if err := rows.Scan(&c.CourseID, &c.Title, &c.Description, &c.Category,
			&c.FinalQuizTopic, &c.CreatedAt, &c.FinalQuizPassed, &c.IsCompleted); err != nil {
			return nil, fmt.Errorf("scan course progress row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
