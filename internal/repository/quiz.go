package repository

import (
	"context"
	"fmt"

	"github.com/talentflow/talentflow/pkg/model"
)

func (r *Repository) CreateQuizAttempt(ctx context.Context, a *model.QuizAttempt) (int64, error) {
	const q = `
INSERT INTO quiz_attempts (user_id, topic, score, total_questions)
VALUES ($1, $2, $3, $4) RETURNING attempt_id
`
	var id int64
	row := r.db.QueryRow(ctx, q, a.UserID, a.Topic, a.Score, a.TotalQuestions)
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("insert quiz attempt: %w", err)
	}
	return id, nil
}

func (r *Repository) ListQuizAttempts(ctx context.Context, userID string) ([]model.QuizAttempt, error) {
	const q = `
SELECT attempt_id, user_id, topic, score, total_questions, created_at
FROM quiz_attempts WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query quiz attempts: %w", err)
	}
	defer rows.Close()

	var out []model.QuizAttempt
	for rows.Next() {
		var a model.QuizAttempt
		if err := rows.Scan(&a.AttemptID, &a.UserID, &a.Topic, &a.Score,
			&a.TotalQuestions, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan quiz attempt row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
