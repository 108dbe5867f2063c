package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/interview"
	"github.com/talentflow/talentflow/internal/repository"
	"github.com/talentflow/talentflow/pkg/model"
	"github.com/talentflow/talentflow/pkg/response"
)

type startInterviewRequest struct {
	JobID int64 `json:"job_id" binding:"required"`
}

// StartInterview opens (or resumes) a mock interview for a job the
// candidate has applied to. A fresh session gets its full question set
// generated up front.
func (h *Handler) StartInterview(c *gin.Context) {
	var req startInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	if _, err := h.Repository.GetApplicationForJob(ctx, claims.UserID, req.JobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.BadRequest(c, "apply to the job before starting an interview")
			return
		}
		h.repoError(c, err, "application get")
		return
	}

	// Resume an open session instead of regenerating questions.
	if session, err := h.Repository.GetIncompleteSession(ctx, claims.UserID, req.JobID); err == nil {
		questions, err := h.Repository.ListSessionQuestions(ctx, session.SessionID)
		if err != nil {
			h.repoError(c, err, "session questions")
			return
		}
		response.OK(c, gin.H{"session": session, "total_questions": len(questions), "resumed": true})
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		h.repoError(c, err, "session lookup")
		return
	}

	job, err := h.Repository.GetJobByID(ctx, req.JobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}

	var profile model.ResumeProfile
	if resumes, err := h.Repository.ListResumesByCandidate(ctx, claims.UserID); err == nil && len(resumes) > 0 {
		profile = resumes[0].Profile
	}

	questions, origin := h.AI.InterviewQuestions(ctx, profile, job.Title)
	session, err := h.Repository.CreateSessionWithQuestions(ctx, claims.UserID, req.JobID, questions)
	if err != nil {
		h.repoError(c, err, "session create")
		return
	}

	response.Created(c, gin.H{
		"session":          session,
		"total_questions":  len(questions),
		"questions_origin": origin.String(),
	})
}

// NextQuestion returns the lowest-order unanswered question. When every
// question is answered it finalizes the session: computes the overall score
// and moves the application to the interview stage.
func (h *Handler) NextQuestion(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	session, ok := h.ownedSession(c, sessionID)
	if !ok {
		return
	}

	questions, err := h.Repository.ListSessionQuestions(ctx, sessionID)
	if err != nil {
		h.repoError(c, err, "session questions")
		return
	}

	next := interview.NextUnanswered(questions)
	if next == nil {
		score, err := h.finalize(c, session, questions)
		if err != nil {
			return
		}
		response.OK(c, gin.H{
			"finished":      true,
			"overall_score": score,
		})
		return
	}

	response.OK(c, model.NextQuestionResponse{
		QuestionID: next.QuestionID,
		Text:       next.Text,
		Order:      next.Ord,
		Total:      len(questions),
	})
}

// SubmitAnswer evaluates one answer and records it.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	var req model.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	if _, ok := h.ownedSession(c, sessionID); !ok {
		return
	}

	questions, err := h.Repository.ListSessionQuestions(ctx, sessionID)
	if err != nil {
		h.repoError(c, err, "session questions")
		return
	}

	var question *model.InterviewQuestion
	for i := range questions {
		if questions[i].QuestionID == req.QuestionID {
			question = &questions[i].InterviewQuestion
			break
		}
	}
	if question == nil {
		response.NotFound(c, "question not in this session")
		return
	}

	eval, origin := h.AI.EvaluateAnswer(ctx, question.Text, req.Answer)
	answer := &model.InterviewAnswer{
		QuestionID:   question.QuestionID,
		AnswerText:   req.Answer,
		Score:        float64(eval.Score),
		Feedback:     eval.Feedback,
		Strengths:    eval.Strengths,
		Improvements: eval.Improvements,
	}
	if err := h.Repository.SaveAnswer(ctx, answer); err != nil {
		h.repoError(c, err, "answer save")
		return
	}

	response.OK(c, gin.H{
		"evaluation":        eval,
		"evaluation_origin": origin.String(),
	})
}

// FinishInterview closes a session early. Unanswered questions count as
// zero in the aggregate.
func (h *Handler) FinishInterview(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	session, ok := h.ownedSession(c, sessionID)
	if !ok {
		return
	}

	questions, err := h.Repository.ListSessionQuestions(c.Request.Context(), sessionID)
	if err != nil {
		h.repoError(c, err, "session questions")
		return
	}

	score, err := h.finalize(c, session, questions)
	if err != nil {
		return
	}
	response.OK(c, gin.H{"finished": true, "overall_score": score})
}

// InterviewReport returns the full session with every question, answer and
// per-answer feedback.
func (h *Handler) InterviewReport(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	session, ok := h.ownedSession(c, sessionID)
	if !ok {
		return
	}

	questions, err := h.Repository.ListSessionQuestions(c.Request.Context(), sessionID)
	if err != nil {
		h.repoError(c, err, "session questions")
		return
	}

	response.OK(c, model.InterviewReport{Session: session, Questions: questions})
}

// MyInterviews lists the candidate's mock interview sessions.
func (h *Handler) MyInterviews(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	sessions, err := h.Repository.ListSessionsByCandidate(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "session list")
		return
	}
	response.OK(c, sessions)
}

func (h *Handler) DeleteInterview(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	claims := h.GetClaimsFromContext(c)
	if err := h.Repository.DeleteSession(c.Request.Context(), sessionID, claims.UserID); err != nil {
		h.repoError(c, err, "session delete")
		return
	}
	response.Message(c, "interview deleted")
}

// ownedSession loads a session and enforces candidate ownership. It writes
// the error response itself when returning ok=false.
func (h *Handler) ownedSession(c *gin.Context, sessionID int64) (model.InterviewSession, bool) {
	claims := h.GetClaimsFromContext(c)
	session, err := h.Repository.GetSessionByID(c.Request.Context(), sessionID)
	if err != nil {
		h.repoError(c, err, "session get")
		return model.InterviewSession{}, false
	}
	if session.CandidateID != claims.UserID {
		response.Forbidden(c, "not your interview")
		return model.InterviewSession{}, false
	}
	return session, true
}

// finalize computes the aggregate score, closes the session and updates the
// application status. It writes the error response itself on failure.
func (h *Handler) finalize(c *gin.Context, session model.InterviewSession, questions []model.QuestionWithAnswer) (float64, error) {
	ctx := c.Request.Context()

	var scores []float64
	for _, q := range questions {
		if q.Answer != nil {
			scores = append(scores, q.Answer.Score)
		}
	}
	score := interview.AggregateScore(scores, len(questions))

	if !session.IsCompleted {
		if err := h.Repository.FinalizeSession(ctx, session.SessionID, score); err != nil {
			h.repoError(c, err, "session finalize")
			return 0, err
		}

		app, err := h.Repository.GetApplicationForJob(ctx, session.CandidateID, session.JobID)
		if err == nil {
			if err := h.Repository.UpdateApplication(ctx, app.ApplicationID, completedInterviewUpdates(score)); err != nil {
				h.Logger.Sugar().Errorw("application status update failed",
					"application_id", app.ApplicationID, "err", err)
			}
		}
	} else {
		score = session.OverallScore
	}
	return score, nil
}
