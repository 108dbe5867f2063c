package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/talentflow/pkg/model"
)

// GetIncompleteSession finds the candidate's open session for a job, so a
// restarted interview resumes instead of regenerating questions.
func (r *Repository) GetIncompleteSession(ctx context.Context, candidateID string, jobID int64) (model.InterviewSession, error) {
	const q = `
SELECT session_id, candidate_id, job_id, overall_score, is_completed, created_at
FROM interview_sessions
WHERE candidate_id = $1 AND job_id = $2 AND is_completed = FALSE
ORDER BY created_at DESC LIMIT 1
`
	var s model.InterviewSession
	row := r.db.QueryRow(ctx, q, candidateID, jobID)
	if err := row.Scan(&s.SessionID, &s.CandidateID, &s.JobID,
		&s.OverallScore, &s.IsCompleted, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.InterviewSession{}, fmt.Errorf("open session: %w", ErrNotFound)
		}
		return model.InterviewSession{}, fmt.Errorf("scan session: %w", err)
	}
	return s, nil
}

func (r *Repository) GetSessionByID(ctx context.Context, sessionID int64) (model.InterviewSession, error) {
	const q = `
SELECT session_id, candidate_id, job_id, overall_score, is_completed, created_at
FROM interview_sessions WHERE session_id = $1
`
	var s model.InterviewSession
	row := r.db.QueryRow(ctx, q, sessionID)
	if err := row.Scan(&s.SessionID, &s.CandidateID, &s.JobID,
		&s.OverallScore, &s.IsCompleted, &s.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.InterviewSession{}, fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
		}
		return model.InterviewSession{}, fmt.Errorf("scan session: %w", err)
	}
	return s, nil
}

// CreateSessionWithQuestions inserts the session and its full question set
// atomically. The batch keeps 30 inserts to a single round trip.
func (r *Repository) CreateSessionWithQuestions(ctx context.Context, candidateID string, jobID int64, questions []string) (model.InterviewSession, error) {
	var session model.InterviewSession
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		const q = `
INSERT INTO interview_sessions (candidate_id, job_id)
VALUES ($1, $2)
RETURNING session_id, candidate_id, job_id, overall_score, is_completed, created_at
`
		row := tx.QueryRow(ctx, q, candidateID, jobID)
		if err := row.Scan(&session.SessionID, &session.CandidateID, &session.JobID,
			&session.OverallScore, &session.IsCompleted, &session.CreatedAt); err != nil {
			return fmt.Errorf("insert session: %w", err)
		}

		batch := &pgx.Batch{}
		const insertQ = `INSERT INTO interview_questions (session_id, text, ord) VALUES ($1, $2, $3)`
		for i, text := range questions {
			batch.Queue(insertQ, session.SessionID, text, i+1)
		}

		br := tx.SendBatch(ctx, batch)
		defer br.Close()
		for i := 0; i < len(questions); i++ {
			if _, err := br.Exec(); err != nil {
				return fmt.Errorf("batch insert question %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return model.InterviewSession{}, err
	}
	return session, nil
}

// ListSessionQuestions returns all questions in order with their answers,
// nil Answer where unanswered.
func (r *Repository) ListSessionQuestions(ctx context.Context, sessionID int64) ([]model.QuestionWithAnswer, error) {
	const q = `
SELECT q.question_id, q.session_id, q.text, q.ord,
	a.question_id, a.answer_text, a.score, a.feedback, a.strengths, a.improvements
FROM interview_questions q
LEFT JOIN interview_answers a ON a.question_id = q.question_id
WHERE q.session_id = $1
ORDER BY q.ord ASC
`
	rows, err := r.db.Query(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query session questions: %w", err)
	}
	defer rows.Close()

	var out []model.QuestionWithAnswer
	for rows.Next() {
		var (
			qa           model.QuestionWithAnswer
			ansID        *int64
			ansText      *string
			ansScore     *float64
			feedback     *string
			strengths    *string
			improvements *string
		)
		if err := rows.Scan(&qa.QuestionID, &qa.SessionID, &qa.Text, &qa.Ord,
			&ansID, &ansText, &ansScore, &feedback, &strengths, &improvements); err != nil {
			return nil, fmt.Errorf("scan question row: %w", err)
		}
		if ansID != nil {
			qa.Answer = &model.InterviewAnswer{
				QuestionID:   *ansID,
				AnswerText:   *ansText,
				Score:        *ansScore,
				Feedback:     *feedback,
				Strengths:    *strengths,
				Improvements: *improvements,
			}
		}
		out = append(out, qa)
	}
	return out, rows.Err()
}

// SaveAnswer records an evaluated answer. Re-answering a question replaces
// the previous attempt.
func (r *Repository) SaveAnswer(ctx context.Context, ans *model.InterviewAnswer) error {
	const q = `
INSERT INTO interview_answers (question_id, answer_text, score, feedback, strengths, improvements)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (question_id) DO UPDATE SET
	answer_text = EXCLUDED.answer_text,
	score = EXCLUDED.score,
	feedback = EXCLUDED.feedback,
	strengths = EXCLUDED.strengths,
	improvements = EXCLUDED.improvements
`
	_, err := r.db.Exec(ctx, q,
		ans.QuestionID, ans.AnswerText, ans.Score, ans.Feedback, ans.Strengths, ans.Improvements)
	if err != nil {
		return fmt.Errorf("save answer: %w", err)
	}
	return nil
}

func (r *Repository) FinalizeSession(ctx context.Context, sessionID int64, overallScore float64) error {
	const q = `
UPDATE interview_sessions SET overall_score = $1, is_completed = TRUE
WHERE session_id = $2
`
	tag, err := r.db.Exec(ctx, q, overallScore, sessionID)
	if err != nil {
		return fmt.Errorf("finalize session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
	}
	return nil
}

func (r *Repository) ListSessionsByCandidate(ctx context.Context, candidateID string) ([]model.InterviewSession, error) {
	const q = `
SELECT session_id, candidate_id, job_id, overall_score, is_completed, created_at
FROM interview_sessions WHERE candidate_id = $1
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []model.InterviewSession
	for rows.Next() {
		var s model.InterviewSession
		if err := rows.Scan(&s.SessionID, &s.CandidateID, &s.JobID,
			&s.OverallScore, &s.IsCompleted, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repository) DeleteSession(ctx context.Context, sessionID int64, candidateID string) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		const qAnswers = `
DELETE FROM interview_answers WHERE question_id IN (
	SELECT question_id FROM interview_questions WHERE session_id = $1
)`
		if _, err := tx.Exec(ctx, qAnswers, sessionID); err != nil {
			return fmt.Errorf("delete answers: %w", err)
		}

		const qQuestions = `DELETE FROM interview_questions WHERE session_id = $1`
		if _, err := tx.Exec(ctx, qQuestions, sessionID); err != nil {
			return fmt.Errorf("delete questions: %w", err)
		}

		const qSession = `DELETE FROM interview_sessions WHERE session_id = $1 AND candidate_id = $2`
		tag, err := tx.Exec(ctx, qSession, sessionID, candidateID)
		if err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("session %d: %w", sessionID, ErrNotFound)
		}
		return nil
	})
}
