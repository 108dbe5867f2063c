package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/talentflow/pkg/model"
)

func (r *Repository) CreateResume(ctx context.Context, resume *model.Resume) (int64, error) {
	profile, err := json.Marshal(resume.Profile)
	if err != nil {
		return 0, fmt.Errorf("marshal profile: %w", err)
	}

	const q = `
INSERT INTO resumes (
	candidate_id, file_name, profile, match_score, ai_feedback,
	skills_matched, missing_skills, improvement_suggestions
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING resume_id
`
	var resumeID int64
	row := r.db.QueryRow(ctx, q,
		resume.CandidateID, resume.FileName, profile, resume.MatchScore, resume.AIFeedback,
		resume.SkillsMatched, resume.MissingSkills, resume.ImprovementSuggestions,
	)
	if err := row.Scan(&resumeID); err != nil {
		return 0, fmt.Errorf("insert resume: %w", err)
	}
	return resumeID, nil
}

func (r *Repository) GetResumeByID(ctx context.Context, resumeID int64) (model.Resume, error) {
	const q = `
SELECT resume_id, candidate_id, file_name, profile, match_score, ai_feedback,
	skills_matched, missing_skills, improvement_suggestions, uploaded_at
FROM resumes WHERE resume_id = $1
`
	var (
		resume  model.Resume
		profile []byte
	)
	row := r.db.QueryRow(ctx, q, resumeID)
	if err := row.Scan(&resume.ResumeID, &resume.CandidateID, &resume.FileName, &profile,
		&resume.MatchScore, &resume.AIFeedback, &resume.SkillsMatched, &resume.MissingSkills,
		&resume.ImprovementSuggestions, &resume.UploadedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Resume{}, fmt.Errorf("resume %d: %w", resumeID, ErrNotFound)
		}
		return model.Resume{}, fmt.Errorf("scan resume: %w", err)
	}
	if err := json.Unmarshal(profile, &resume.Profile); err != nil {
		return model.Resume{}, fmt.Errorf("unmarshal profile: %w", err)
	}
	return resume, nil
}

func (r *Repository) ListResumesByCandidate(ctx context.Context, candidateID string) ([]model.Resume, error) {
	const q = `
SELECT resume_id, candidate_id, file_name, profile, match_score, ai_feedback,
	skills_matched, missing_skills, improvement_suggestions, uploaded_at
FROM resumes WHERE candidate_id = $1
ORDER BY uploaded_at DESC
`
	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, fmt.Errorf("query resumes: %w", err)
	}
	defer rows.Close()

	var out []model.Resume
	for rows.Next() {
		var (
			resume  model.Resume
			profile []byte
		)
		if err := rows.Scan(&resume.ResumeID, &resume.CandidateID, &resume.FileName, &profile,
			&resume.MatchScore, &resume.AIFeedback, &resume.SkillsMatched, &resume.MissingSkills,
			&resume.ImprovementSuggestions, &resume.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan resume row: %w", err)
		}
		if err := json.Unmarshal(profile, &resume.Profile); err != nil {
			return nil, fmt.Errorf("unmarshal profile: %w", err)
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}
