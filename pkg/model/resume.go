package model

import "time"

// ResumeProfile is the structured result of AI resume parsing.
type ResumeProfile struct {
	Name       string   `json:"Name"`
	Email      string   `json:"Email"`
	Phone      string   `json:"Phone"`
	Skills     []string `json:"Skills"`
	Experience string   `json:"Experience"`
	Education  string   `json:"Education"`
}

type Resume struct {
	ResumeID    int64         `json:"resume_id" db:"resume_id"`
	CandidateID string        `json:"candidate_id" db:"candidate_id"`
	FileName    string        `json:"file_name" db:"file_name"`
	Profile     ResumeProfile `json:"profile" db:"profile"`
	MatchScore  float64       `json:"match_score" db:"match_score"`
	AIFeedback  string        `json:"ai_feedback" db:"ai_feedback"`
	// Snapshots stored for HR listings; candidate-facing views always
	// recompute matched/missing from the profile and the job posting.
	SkillsMatched          string    `json:"skills_matched" db:"skills_matched"`
	MissingSkills          string    `json:"missing_skills" db:"missing_skills"`
	ImprovementSuggestions string    `json:"improvement_suggestions" db:"improvement_suggestions"`
	UploadedAt             time.Time `json:"uploaded_at" db:"uploaded_at"`
}

type ScreeningPreview struct {
	Resume             Resume   `json:"resume"`
	Job                Job      `json:"job"`
	MatchedSkills      []string `json:"matched_skills"`
	MissingSkills      []string `json:"missing_skills"`
	RecommendedCourses []Course `json:"recommended_courses"`
}
