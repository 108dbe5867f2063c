package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/pkg/model"
	"github.com/talentflow/talentflow/pkg/response"
)

// A quiz is passed at 80% or better; passing marks matching courses' final
// quizzes as cleared.
const quizPassRatio = 0.8

// GetQuiz returns a question set for a topic, cached per user so a page
// reload does not regenerate it.
func (h *Handler) GetQuiz(c *gin.Context) {
	topic := c.Query("topic")
	if topic == "" {
		response.BadRequest(c, "topic is required")
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	if questions, ok := h.QuizCache.Get(ctx, claims.UserID, topic); ok {
		response.OK(c, gin.H{"questions": questions, "cached": true})
		return
	}

	// Personalize against the latest resume profile when one exists.
	var profile *model.ResumeProfile
	if resumes, err := h.Repository.ListResumesByCandidate(ctx, claims.UserID); err == nil && len(resumes) > 0 {
		profile = &resumes[0].Profile
	}

	questions, origin := h.AI.QuizQuestions(ctx, topic, profile)
	if err := h.QuizCache.Set(ctx, claims.UserID, topic, questions); err != nil {
		h.Logger.Sugar().Warnw("quiz cache set failed", "topic", topic, "err", err)
	}

	response.OK(c, gin.H{
		"questions":        questions,
		"cached":           false,
		"questions_origin": origin.String(),
	})
}

// SubmitQuiz records an attempt. A score of 80% or better marks matching
// course final quizzes as passed.
func (h *Handler) SubmitQuiz(c *gin.Context) {
	var req model.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Total < 1 {
		response.BadRequest(c, "total must be positive")
		return
	}
	if *req.Score < 0 || *req.Score > req.Total {
		response.BadRequest(c, "score out of range")
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	attempt := &model.QuizAttempt{
		UserID:         claims.UserID,
		Topic:          req.Topic,
		Score:          *req.Score,
		TotalQuestions: req.Total,
	}
	attemptID, err := h.Repository.CreateQuizAttempt(ctx, attempt)
	if err != nil {
		h.repoError(c, err, "quiz attempt create")
		return
	}
	attempt.AttemptID = attemptID

	passed := float64(*req.Score)/float64(req.Total) >= quizPassRatio
	var coursesUpdated int64
	if passed {
		coursesUpdated, err = h.Repository.MarkQuizPassed(ctx, claims.UserID, req.Topic)
		if err != nil {
			h.Logger.Sugar().Errorw("mark quiz passed failed", "topic", req.Topic, "err", err)
		}
	}

	if err := h.QuizCache.Invalidate(ctx, claims.UserID, req.Topic); err != nil {
		h.Logger.Sugar().Warnw("quiz cache invalidate failed", "topic", req.Topic, "err", err)
	}

	response.Created(c, gin.H{
		"attempt":         attempt,
		"passed":          passed,
		"courses_updated": coursesUpdated,
	})
}

// MyQuizAttempts lists the user's quiz history.
func (h *Handler) MyQuizAttempts(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	attempts, err := h.Repository.ListQuizAttempts(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "quiz attempt list")
		return
	}
	response.OK(c, attempts)
}
