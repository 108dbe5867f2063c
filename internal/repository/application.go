package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/talentflow/pkg/model"
)

func (r *Repository) CreateApplication(ctx context.Context, app *model.Application) (int64, error) {
	const q = `
INSERT INTO applications (
	job_id, candidate_id, resume_id, match_score, ai_feedback,
	skills_matched, missing_skills, improvement_suggestions, status
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING application_id
`
	var appID int64
	row := r.db.QueryRow(ctx, q,
		app.JobID, app.CandidateID, app.ResumeID, app.MatchScore, app.AIFeedback,
		app.SkillsMatched, app.MissingSkills, app.ImprovementSuggestions, app.Status,
	)
	if err := row.Scan(&appID); err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("application for job %d: %w", app.JobID, ErrDuplicate)
		}
		return 0, fmt.Errorf("insert application: %w", err)
	}
	return appID, nil
}

const applicationCols = `
application_id, job_id, candidate_id, resume_id, match_score, ai_feedback,
skills_matched, missing_skills, improvement_suggestions, status, applied_at`

func scanApplication(row pgx.Row) (model.Application, error) {
	var a model.Application
	err := row.Scan(&a.ApplicationID, &a.JobID, &a.CandidateID, &a.ResumeID,
		&a.MatchScore, &a.AIFeedback, &a.SkillsMatched, &a.MissingSkills,
		&a.ImprovementSuggestions, &a.Status, &a.AppliedAt)
	return a, err
}

func (r *Repository) GetApplicationByID(ctx context.Context, appID int64) (model.Application, error) {
	q := "SELECT " + applicationCols + " FROM applications WHERE application_id = $1"
	app, err := scanApplication(r.db.QueryRow(ctx, q, appID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Application{}, fmt.Errorf("application %d: %w", appID, ErrNotFound)
		}
		return model.Application{}, fmt.Errorf("scan application: %w", err)
	}
	return app, nil
}

// GetApplicationForJob returns the candidate's application for a job.
func (r *Repository) GetApplicationForJob(ctx context.Context, candidateID string, jobID int64) (model.Application, error) {
	q := "SELECT " + applicationCols + " FROM applications WHERE candidate_id = $1 AND job_id = $2"
	app, err := scanApplication(r.db.QueryRow(ctx, q, candidateID, jobID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Application{}, fmt.Errorf("application for job %d: %w", jobID, ErrNotFound)
		}
		return model.Application{}, fmt.Errorf("scan application: %w", err)
	}
	return app, nil
}

// ListApplicantsByJob returns every applicant for a job with candidate
// identity attached, best match first.
func (r *Repository) ListApplicantsByJob(ctx context.Context, jobID int64) ([]model.Applicant, error) {
	const q = `
SELECT a.application_id, a.job_id, a.candidate_id, a.resume_id, a.match_score, a.ai_feedback,
	a.skills_matched, a.missing_skills, a.improvement_suggestions, a.status, a.applied_at,
	u.name, u.email
FROM applications a
JOIN users u ON u.user_id = a.candidate_id
WHERE a.job_id = $1
ORDER BY a.match_score DESC, a.applied_at ASC
`
	rows, err := r.db.Query(ctx, q, jobID)
	if err != nil {
		return nil, fmt.Errorf("query applicants: %w", err)
	}
	defer rows.Close()

	var out []model.Applicant
	for rows.Next() {
		var a model.Applicant
		if err := rows.Scan(&a.ApplicationID, &a.JobID, &a.CandidateID, &a.ResumeID,
			&a.MatchScore, &a.AIFeedback, &a.SkillsMatched, &a.MissingSkills,
			&a.ImprovementSuggestions, &a.Status, &a.AppliedAt,
			&a.CandidateName, &a.CandidateEmail); err != nil {
			return nil, fmt.Errorf("scan applicant row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repository) ListApplicationsByCandidate(ctx context.Context, candidateID string) ([]model.Application, error) {
	q := "SELECT " + applicationCols + " FROM applications WHERE candidate_id = $1 ORDER BY applied_at DESC"
	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	var out []model.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application row: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateApplication applies a partial update; unknown columns are skipped.
func (r *Repository) UpdateApplication(ctx context.Context, appID int64, updates map[string]interface{}) error {
	validCols := map[string]bool{
		"status": true, "match_score": true, "ai_feedback": true,
		"skills_matched": true, "missing_skills": true, "improvement_suggestions": true,
		"resume_id": true,
	}

	query := "UPDATE applications SET "
	args := []interface{}{}
	argId := 1

	for col, val := range updates {
		if !validCols[col] {
			continue
		}
		if argId > 1 {
			query += ", "
		}
		query += fmt.Sprintf("%s = $%d", col, argId)
		args = append(args, val)
		argId++
	}
	if argId == 1 {
		return nil
	}

	query += fmt.Sprintf(" WHERE application_id = $%d", argId)
	args = append(args, appID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %d: %w", appID, ErrNotFound)
	}
	return nil
}
