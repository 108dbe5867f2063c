package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/talentflow/pkg/model"
)

func (r *Repository) CreateJob(ctx context.Context, job *model.Job) (int64, error) {
	const q = `
INSERT INTO jobs (hr_id, title, description, skills_required, experience_required, location)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING job_id
`
	var jobID int64
	row := r.db.QueryRow(ctx, q,
		job.HRID, job.Title, job.Description, job.SkillsRequired, job.ExperienceRequired, job.Location,
	)
	if err := row.Scan(&jobID); err != nil {
		return 0, fmt.Errorf("insert job: %w", err)
	}
	return jobID, nil
}

func (r *Repository) GetJobByID(ctx context.Context, jobID int64) (model.Job, error) {
	const q = `
SELECT job_id, hr_id, title, description, skills_required, experience_required, location, created_at
FROM jobs WHERE job_id = $1
`
	var j model.Job
	row := r.db.QueryRow(ctx, q, jobID)
	if err := row.Scan(&j.JobID, &j.HRID, &j.Title, &j.Description,
		&j.SkillsRequired, &j.ExperienceRequired, &j.Location, &j.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Job{}, fmt.Errorf("job %d: %w", jobID, ErrNotFound)
		}
		return model.Job{}, fmt.Errorf("scan job: %w", err)
	}
	return j, nil
}

// ListJobs returns open jobs newest first, optionally filtered by a search
// term matched against title, skills and location.
func (r *Repository) ListJobs(ctx context.Context, search string, limit, offset int) ([]model.Job, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE title ILIKE $1 OR skills_required ILIKE $1 OR location ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	countQ := "SELECT COUNT(1) FROM jobs " + where
	var total int
	if err := r.db.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	q := fmt.Sprintf(`
SELECT job_id, hr_id, title, description, skills_required, experience_required, location, created_at
FROM jobs %s
ORDER BY created_at DESC LIMIT $%d OFFSET $%d
`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	out := make([]model.Job, 0, limit)
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.JobID, &j.HRID, &j.Title, &j.Description,
			&j.SkillsRequired, &j.ExperienceRequired, &j.Location, &j.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan job row: %w", err)
		}
		out = append(out, j)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, total, nil
}

func (r *Repository) ListJobsByHR(ctx context.Context, hrID string) ([]model.Job, error) {
	const q = `
SELECT job_id, hr_id, title, description, skills_required, experience_required, location, created_at
FROM jobs WHERE hr_id = $1
ORDER BY created_at DESC
`
	rows, err := r.db.Query(ctx, q, hrID)
	if err != nil {
		return nil, fmt.Errorf("query jobs by hr: %w", err)
	}
	defer rows.Close()

	var out []model.Job
	for rows.Next() {
		var j model.Job
		if err := rows.Scan(&j.JobID, &j.HRID, &j.Title, &j.Description,
			&j.SkillsRequired, &j.ExperienceRequired, &j.Location, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan job row: %w", err)
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// UpdateJob applies a partial edit to a posting; unknown columns are
// skipped. The hr_id scope keeps edits to the posting's owner.
func (r *Repository) UpdateJob(ctx context.Context, jobID int64, hrID string, updates map[string]interface{}) error {
	validCols := map[string]bool{
		"title": true, "description": true, "skills_required": true,
		"experience_required": true, "location": true,
	}

	query := "UPDATE jobs SET "
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

	query += fmt.Sprintf(" WHERE job_id = $%d AND hr_id = $%d", argId, argId+1)
	args = append(args, jobID, hrID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}
	return nil
}

// DeleteJob removes a posting and everything hanging off it. Only the HR
// user who posted the job may delete it.
func (r *Repository) DeleteJob(ctx context.Context, jobID int64, hrID string) error {
	const q = `DELETE FROM jobs WHERE job_id = $1 AND hr_id = $2`
	tag, err := r.db.Exec(ctx, q, jobID, hrID)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("job %d: %w", jobID, ErrNotFound)
	}
	return nil
}

func (r *Repository) HasApplied(ctx context.Context, jobID int64, candidateID string) (bool, error) {
	const q = `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`
	var applied bool
	if err := r.db.QueryRow(ctx, q, jobID, candidateID).Scan(&applied); err != nil {
		return false, fmt.Errorf("check applied: %w", err)
	}
	return applied, nil
}
