package model

import "time"

type InterviewSession struct {
	SessionID    int64     `json:"session_id" db:"session_id"`
	CandidateID  string    `json:"candidate_id" db:"candidate_id"`
	JobID        int64     `json:"job_id" db:"job_id"`
	OverallScore float64   `json:"overall_score" db:"overall_score"`
	IsCompleted  bool      `json:"is_completed" db:"is_completed"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type InterviewQuestion struct {
	QuestionID int64  `json:"question_id" db:"question_id"`
	SessionID  int64  `json:"session_id" db:"session_id"`
	Text       string `json:"text" db:"text"`
	Ord        int    `json:"order" db:"ord"`
}

type InterviewAnswer struct {
	QuestionID   int64   `json:"question_id" db:"question_id"`
	AnswerText   string  `json:"answer_text" db:"answer_text"`
	Score        float64 `json:"score" db:"score"`
	Feedback     string  `json:"feedback" db:"feedback"`
	Strengths    string  `json:"strengths" db:"strengths"`
	Improvements string  `json:"improvements" db:"improvements"`
}

// QuestionWithAnswer pairs a question with its answer (nil if unanswered),
// used by the interview report.
type QuestionWithAnswer struct {
	InterviewQuestion
	Answer *InterviewAnswer `json:"answer"`
}

type SubmitAnswerRequest struct {
	QuestionID int64  `json:"question_id" binding:"required"`
	Answer     string `json:"answer" binding:"required"`
}

type NextQuestionResponse struct {
	QuestionID int64  `json:"id,omitempty"`
	Text       string `json:"text,omitempty"`
	Order      int    `json:"order,omitempty"`
	Total      int    `json:"total,omitempty"`
	Finished   bool   `json:"finished"`
}

type InterviewReport struct {
	Session   InterviewSession     `json:"session"`
	Questions []QuestionWithAnswer `json:"questions"`
}
