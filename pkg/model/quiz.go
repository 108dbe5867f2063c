package model

import "time"

type QuizAttempt struct {
	AttemptID      int64     `json:"attempt_id" db:"attempt_id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Topic          string    `json:"topic" db:"topic"`
	Score          int       `json:"score" db:"score"`
	TotalQuestions int       `json:"total_questions" db:"total_questions"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

type SubmitQuizRequest struct {
	Topic string `json:"topic" binding:"required"`
	Score *int   `json:"score" binding:"required"`
	Total int    `json:"total"`
}
