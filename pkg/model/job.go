package model

import "time"

type Job struct {
	JobID              int64     `json:"job_id" db:"job_id"`
	HRID               string    `json:"hr_id" db:"hr_id"`
	Title              string    `json:"title" db:"title"`
	Description        string    `json:"description" db:"description"`
	SkillsRequired     string    `json:"skills_required" db:"skills_required"` // comma separated
	ExperienceRequired string    `json:"experience_required" db:"experience_required"`
	Location           string    `json:"location" db:"location"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}

type PostJobRequest struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description" binding:"required"`
	SkillsRequired     string `json:"skills_required" binding:"required"`
	ExperienceRequired string `json:"experience_required"`
	Location           string `json:"location"`
}

// UpdateJobRequest carries a partial edit; nil fields are left untouched.
type UpdateJobRequest struct {
	Title              *string `json:"title"`
	Description        *string `json:"description"`
	SkillsRequired     *string `json:"skills_required"`
	ExperienceRequired *string `json:"experience_required"`
	Location           *string `json:"location"`
}

type JobListQuery struct {
	Q        string `form:"q"`
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
}

type JobDetail struct {
	Job        Job  `json:"job"`
	HasApplied bool `json:"has_applied"`
}
