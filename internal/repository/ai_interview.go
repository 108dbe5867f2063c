package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/talentflow/pkg/model"
)

func (r *Repository) CreateAISession(ctx context.Context, s *model.AIInterviewSession) (int64, error) {
	const q = `
INSERT INTO ai_interview_sessions (
	candidate_id, role, experience_level, interview_type, tech_stack, num_questions, vapi_call_id
) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING session_id
`
	var sessionID int64
	row := r.db.QueryRow(ctx, q,
		s.CandidateID, s.Role, s.ExperienceLevel, s.InterviewType, s.TechStack, s.NumQuestions, s.VapiCallID,
	)
	if err := row.Scan(&sessionID); err != nil {
		return 0, fmt.Errorf("insert ai session: %w", err)
	}
	return sessionID, nil
}

const aiSessionCols = `
session_id, candidate_id, role, experience_level, interview_type, tech_stack,
num_questions, vapi_call_id, communication_score, technical_score, problem_solving_score,
cultural_fit_score, confidence_score, clarity_score, overall_score, feedback_summary,
detailed_feedback, is_completed, created_at`

func scanAISession(row pgx.Row) (model.AIInterviewSession, error) {
	var (
		s        model.AIInterviewSession
		detailed []byte
	)
	err := row.Scan(&s.SessionID, &s.CandidateID, &s.Role, &s.ExperienceLevel, &s.InterviewType,
		&s.TechStack, &s.NumQuestions, &s.VapiCallID, &s.CommunicationScore, &s.TechnicalScore,
		&s.ProblemSolvingScore, &s.CulturalFitScore, &s.ConfidenceScore, &s.ClarityScore,
		&s.OverallScore, &s.FeedbackSummary, &detailed, &s.IsCompleted, &s.CreatedAt)
	if err != nil {
		return model.AIInterviewSession{}, err
	}
	if err := json.Unmarshal(detailed, &s.DetailedFeedback); err != nil {
		return model.AIInterviewSession{}, fmt.Errorf("unmarshal detailed feedback: %w", err)
	}
	return s, nil
}

func (r *Repository) GetAISessionByID(ctx context.Context, sessionID int64) (model.AIInterviewSession, error) {
	q := "SELECT " + aiSessionCols + " FROM ai_interview_sessions WHERE session_id = $1"
	s, err := scanAISession(r.db.QueryRow(ctx, q, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AIInterviewSession{}, fmt.Errorf("ai session %d: %w", sessionID, ErrNotFound)
		}
		return model.AIInterviewSession{}, fmt.Errorf("scan ai session: %w", err)
	}
	return s, nil
}

func (r *Repository) ListAISessionsByCandidate(ctx context.Context, candidateID string) ([]model.AIInterviewSession, error) {
	q := "SELECT " + aiSessionCols + ` FROM ai_interview_sessions
WHERE candidate_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, fmt.Errorf("query ai sessions: %w", err)
	}
	defer rows.Close()

	var out []model.AIInterviewSession
	for rows.Next() {
		s, err := scanAISession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ai session row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// AppendTurn stores one utterance and returns the stored record.
func (r *Repository) AppendTurn(ctx context.Context, sessionID int64, speaker model.Speaker, text string) (model.AITurn, error) {
	const q = `
INSERT INTO ai_interview_turns (session_id, speaker, text)
VALUES ($1, $2, $3)
RETURNING turn_id, session_id, speaker, text, created_at
`
	var turn model.AITurn
	row := r.db.QueryRow(ctx, q, sessionID, speaker, text)
	if err := row.Scan(&turn.TurnID, &turn.SessionID, &turn.Speaker, &turn.Text, &turn.CreatedAt); err != nil {
		return model.AITurn{}, fmt.Errorf("insert turn: %w", err)
	}
	return turn, nil
}

func (r *Repository) ListTurns(ctx context.Context, sessionID int64) ([]model.AITurn, error) {
	const q = `
SELECT turn_id, session_id, speaker, text, created_at
FROM ai_interview_turns WHERE session_id = $1
ORDER BY turn_id ASC
`
	rows, err := r.db.Query(ctx, q, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query turns: %w", err)
	}
	defer rows.Close()

	var out []model.AITurn
	for rows.Next() {
		var turn model.AITurn
		if err := rows.Scan(&turn.TurnID, &turn.SessionID, &turn.Speaker, &turn.Text, &turn.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan turn row: %w", err)
		}
		out = append(out, turn)
	}
	return out, rows.Err()
}

// CompleteAISession writes the final evaluation and marks the session done.
func (r *Repository) CompleteAISession(ctx context.Context, sessionID int64, fb model.InterviewFeedback) error {
	detailed, err := json.Marshal(fb.DetailedFeedback)
	if err != nil {
		return fmt.Errorf("marshal detailed feedback: %w", err)
	}

	const q = `
UPDATE ai_interview_sessions SET
	communication_score = $1, technical_score = $2, problem_solving_score = $3,
	cultural_fit_score = $4, confidence_score = $5, clarity_score = $6,
	overall_score = $7, feedback_summary = $8, detailed_feedback = $9,
	is_completed = TRUE
WHERE session_id = $10
`
	tag, err := r.db.Exec(ctx, q,
		fb.CommunicationScore, fb.TechnicalScore, fb.ProblemSolvingScore,
		fb.CulturalFitScore, fb.ConfidenceScore, fb.ClarityScore,
		fb.OverallScore, fb.FeedbackSummary, detailed, sessionID)
	if err != nil {
		return fmt.Errorf("complete ai session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ai session %d: %w", sessionID, ErrNotFound)
	}
	return nil
}

func (r *Repository) DeleteAISession(ctx context.Context, sessionID int64, candidateID string) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		const qTurns = `DELETE FROM ai_interview_turns WHERE session_id = $1`
		if _, err := tx.Exec(ctx, qTurns, sessionID); err != nil {
			return fmt.Errorf("delete turns: %w", err)
		}

		const qSession = `DELETE FROM ai_interview_sessions WHERE session_id = $1 AND candidate_id = $2`
		tag, err := tx.Exec(ctx, qSession, sessionID, candidateID)
		if err != nil {
			return fmt.Errorf("delete ai session: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("ai session %d: %w", sessionID, ErrNotFound)
		}
		return nil
	})
}
