package model

import "time"

type Speaker string

const (
	SpeakerAI        Speaker = "AI"
	SpeakerCandidate Speaker = "Candidate"
)

// AITurn is one utterance in an AI interview transcript. Turns are stored as
// ordered records and only rendered to a flat text form when building prompts.
type AITurn struct {
	TurnID    int64     `json:"turn_id" db:"turn_id"`
	SessionID int64     `json:"session_id" db:"session_id"`
	Speaker   Speaker   `json:"speaker" db:"speaker"`
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type AIInterviewSession struct {
	SessionID       int64  `json:"session_id" db:"session_id"`
	CandidateID     string `json:"candidate_id" db:"candidate_id"`
	Role            string `json:"role" db:"role"`
	ExperienceLevel string `json:"experience_level" db:"experience_level"`
	InterviewType   string `json:"interview_type" db:"interview_type"`
	TechStack       string `json:"tech_stack" db:"tech_stack"`
	NumQuestions    int    `json:"num_questions" db:"num_questions"`
	VapiCallID      *string `json:"vapi_call_id" db:"vapi_call_id"`

	CommunicationScore  float64 `json:"communication_score" db:"communication_score"`
	TechnicalScore      float64 `json:"technical_score" db:"technical_score"`
	ProblemSolvingScore float64 `json:"problem_solving_score" db:"problem_solving_score"`
	CulturalFitScore    float64 `json:"cultural_fit_score" db:"cultural_fit_score"`
	ConfidenceScore     float64 `json:"confidence_score" db:"confidence_score"`
	ClarityScore        float64 `json:"clarity_score" db:"clarity_score"`

	OverallScore     float64           `json:"overall_score" db:"overall_score"`
	FeedbackSummary  string            `json:"feedback_summary" db:"feedback_summary"`
	DetailedFeedback map[string]string `json:"detailed_feedback" db:"detailed_feedback"`

	IsCompleted bool      `json:"is_completed" db:"is_completed"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

type StartAIInterviewRequest struct {
	Role            string `json:"role"`
	ExperienceLevel string `json:"experience_level"`
	InterviewType   string `json:"interview_type"`
	TechStack       string `json:"tech_stack"`
	// Accepts a number, a numeric string ("5") or a spoken word ("five");
	// voice clients send whatever the transcriber produced.
	NumQuestions any `json:"num_questions"`
}

type ChatTurnRequest struct {
	Response string `json:"response" binding:"required"`
	Code     string `json:"code"`
}

type ChatTurnResponse struct {
	NextQuestion string `json:"next_question"`
	IsFinished   bool   `json:"is_finished"`
}

type AIInterviewReport struct {
	Session AIInterviewSession `json:"session"`
	// Sub-score map keyed by display category, shaped for a radar chart.
	RadarData map[string]float64 `json:"radar_data"`
}
