package model

import "time"

type CourseCategory string

const (
	CategoryTechnical  CourseCategory = "technical"
	CategorySoftSkills CourseCategory = "soft_skills"
	CategoryCareerPrep CourseCategory = "career_prep"
)

type Course struct {
	CourseID    int64          `json:"course_id" db:"course_id"`
	Title       string         `json:"title" db:"title"`
	Description string         `json:"description" db:"description"`
	Category    CourseCategory `json:"category" db:"category"`
	// Topic string handed to quiz generation for this course's final quiz.
	// Defaults to the course title.
	FinalQuizTopic string    `json:"final_quiz_topic" db:"final_quiz_topic"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type CourseProgress struct {
	ProgressID      int64     `json:"progress_id" db:"progress_id"`
	UserID          string    `json:"user_id" db:"user_id"`
	CourseID        int64     `json:"course_id" db:"course_id"`
	FinalQuizPassed bool      `json:"final_quiz_passed" db:"final_quiz_passed"`
	IsCompleted     bool      `json:"is_completed" db:"is_completed"`
	LastAccessed    time.Time `json:"last_accessed" db:"last_accessed"`
}

type CourseWithProgress struct {
	Course
	FinalQuizPassed bool `json:"final_quiz_passed"`
	IsCompleted     bool `json:"is_completed"`
}
