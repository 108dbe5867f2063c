package model

// Typed result shapes for AI gateway operations.

type MatchAnalysis struct {
	MatchScore             int      `json:"match_score"`
	SkillsMatched          []string `json:"skills_matched"`
	MissingSkills          []string `json:"missing_skills"`
	AIFeedback             string   `json:"ai_feedback"`
	ImprovementSuggestions string   `json:"improvement_suggestions"`
}

type AnswerEvaluation struct {
	Score        int    `json:"score"` // 0-10
	Feedback     string `json:"feedback"`
	Strengths    string `json:"strengths"`
	Improvements string `json:"improvements"`
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"` // always 4
	CorrectAnswer string   `json:"correct_answer"`
}

type InterviewFeedback struct {
	CommunicationScore  float64           `json:"communication_score"`
	TechnicalScore      float64           `json:"technical_score"`
	ProblemSolvingScore float64           `json:"problem_solving_score"`
	CulturalFitScore    float64           `json:"cultural_fit_score"`
	ConfidenceScore     float64           `json:"confidence_score"`
	ClarityScore        float64           `json:"clarity_score"`
	OverallScore        float64           `json:"overall_score"`
	FeedbackSummary     string            `json:"feedback_summary"`
	DetailedFeedback    map[string]string `json:"detailed_feedback"`
}
