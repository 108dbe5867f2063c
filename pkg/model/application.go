package model

import "time"

type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusInterview   ApplicationStatus = "interview"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusRejected, StatusInterview:
		return true
	}
	return false
}

type Application struct {
	ApplicationID          int64             `json:"application_id" db:"application_id"`
	JobID                  int64             `json:"job_id" db:"job_id"`
	CandidateID            string            `json:"candidate_id" db:"candidate_id"`
	ResumeID               *int64            `json:"resume_id" db:"resume_id"`
	MatchScore             float64           `json:"match_score" db:"match_score"`
	AIFeedback             string            `json:"ai_feedback" db:"ai_feedback"`
	SkillsMatched          string            `json:"skills_matched" db:"skills_matched"`
	MissingSkills          string            `json:"missing_skills" db:"missing_skills"`
	ImprovementSuggestions string            `json:"improvement_suggestions" db:"improvement_suggestions"`
	Status                 ApplicationStatus `json:"status" db:"status"`
	AppliedAt              time.Time         `json:"applied_at" db:"applied_at"`
}

type ConfirmApplyRequest struct {
	ResumeID int64 `json:"resume_id" binding:"required"`
	JobID    int64 `json:"job_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status ApplicationStatus `json:"status" binding:"required"`
}

// Applicant is a row in the HR applicant listing, ordered by match score.
type Applicant struct {
	Application
	CandidateName  string `json:"candidate_name"`
	CandidateEmail string `json:"candidate_email"`
}

type ScreeningResult struct {
	Application        Application `json:"application"`
	MatchedSkills      []string    `json:"matched_skills"`
	MissingSkills      []string    `json:"missing_skills"`
	RecommendedCourses []Course    `json:"recommended_courses"`
	Advisory           string      `json:"advisory,omitempty"`
}

// ApplicationDetail is the full view of one application, for the candidate
// who owns it or the HR user whose posting it targets. Matched and missing
// skills are recomputed against the live posting.
type ApplicationDetail struct {
	Application   Application `json:"application"`
	Job           Job         `json:"job"`
	CandidateName string      `json:"candidate_name"`
	MatchedSkills []string    `json:"matched_skills"`
	MissingSkills []string    `json:"missing_skills"`
}
