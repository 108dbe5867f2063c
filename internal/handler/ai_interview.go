package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/ai"
	"github.com/talentflow/talentflow/internal/interview"
	"github.com/talentflow/talentflow/pkg/model"
	"github.com/talentflow/talentflow/pkg/response"
)

// StartAIInterview opens a conversational interview session and returns the
// interviewer's opening question.
func (h *Handler) StartAIInterview(c *gin.Context) {
	var req model.StartAIInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	session := &model.AIInterviewSession{
		CandidateID:     claims.UserID,
		Role:            req.Role,
		ExperienceLevel: req.ExperienceLevel,
		InterviewType:   req.InterviewType,
		TechStack:       req.TechStack,
		NumQuestions:    interview.ParseQuestionCount(req.NumQuestions),
	}
	if session.Role == "" {
		session.Role = "Software Engineer"
	}

	sessionID, err := h.Repository.CreateAISession(ctx, session)
	if err != nil {
		h.repoError(c, err, "ai session create")
		return
	}
	session.SessionID = sessionID

	first, origin := h.AI.NextInterviewerTurn(ctx, *session, "", 0, "I am ready to begin the interview.", "")
	if _, err := h.Repository.AppendTurn(ctx, sessionID, model.SpeakerAI, first); err != nil {
		h.repoError(c, err, "turn append")
		return
	}

	response.Created(c, gin.H{
		"session":         session,
		"first_question":  first,
		"question_origin": origin.String(),
	})
}

// ChatTurn records the candidate's reply and returns the interviewer's next
// utterance. When the interviewer closes the conversation the session is
// evaluated and completed.
func (h *Handler) ChatTurn(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	var req model.ChatTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	session, ok := h.ownedAISession(c, sessionID)
	if !ok {
		return
	}
	if session.IsCompleted {
		response.Conflict(c, "interview already completed")
		return
	}

	candidateText := req.Response
	if req.Code != "" {
		candidateText += "\n\nCode:\n" + req.Code
	}
	if _, err := h.Repository.AppendTurn(ctx, sessionID, model.SpeakerCandidate, candidateText); err != nil {
		h.repoError(c, err, "turn append")
		return
	}

	turns, err := h.Repository.ListTurns(ctx, sessionID)
	if err != nil {
		h.repoError(c, err, "turn list")
		return
	}
	transcript := interview.RenderTranscript(turns)
	asked := interview.CountTurns(turns, model.SpeakerAI)

	next, origin := h.AI.NextInterviewerTurn(ctx, session, transcript, asked, req.Response, req.Code)
	if _, err := h.Repository.AppendTurn(ctx, sessionID, model.SpeakerAI, next); err != nil {
		h.repoError(c, err, "turn append")
		return
	}

	finished := ai.InterviewFinished(next)
	if finished {
		if err := h.completeAISession(c, session, transcript+string(model.SpeakerAI)+": "+next+"\n"); err != nil {
			return
		}
	}

	response.OK(c, gin.H{
		"next_question":   next,
		"is_finished":     finished,
		"question_origin": origin.String(),
	})
}

// FinishAIInterview force-completes a session, for voice clients that end
// the call instead of waiting for the closing phrase.
func (h *Handler) FinishAIInterview(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	session, ok := h.ownedAISession(c, sessionID)
	if !ok {
		return
	}
	if session.IsCompleted {
		response.Conflict(c, "interview already completed")
		return
	}

	turns, err := h.Repository.ListTurns(ctx, sessionID)
	if err != nil {
		h.repoError(c, err, "turn list")
		return
	}

	if err := h.completeAISession(c, session, interview.RenderTranscript(turns)); err != nil {
		return
	}
	response.Message(c, "interview completed")
}

// AIInterviewReport returns the evaluated session with radar chart data.
func (h *Handler) AIInterviewReport(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	session, ok := h.ownedAISession(c, sessionID)
	if !ok {
		return
	}

	response.OK(c, model.AIInterviewReport{
		Session: session,
		RadarData: map[string]float64{
			"Communication":   session.CommunicationScore,
			"Technical":       session.TechnicalScore,
			"Problem Solving": session.ProblemSolvingScore,
			"Cultural Fit":    session.CulturalFitScore,
			"Confidence":      session.ConfidenceScore,
			"Clarity":         session.ClarityScore,
		},
	})
}

// AIInterviewTranscript returns the ordered turn records.
func (h *Handler) AIInterviewTranscript(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}
	if _, ok := h.ownedAISession(c, sessionID); !ok {
		return
	}

	turns, err := h.Repository.ListTurns(c.Request.Context(), sessionID)
	if err != nil {
		h.repoError(c, err, "turn list")
		return
	}
	response.OK(c, turns)
}

// MyAIInterviews lists the candidate's conversational interview sessions.
func (h *Handler) MyAIInterviews(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	sessions, err := h.Repository.ListAISessionsByCandidate(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "ai session list")
		return
	}
	response.OK(c, sessions)
}

func (h *Handler) DeleteAIInterview(c *gin.Context) {
	sessionID, ok := parseIDParam(c, "session_id")
	if !ok {
		return
	}

	claims := h.GetClaimsFromContext(c)
	if err := h.Repository.DeleteAISession(c.Request.Context(), sessionID, claims.UserID); err != nil {
		h.repoError(c, err, "ai session delete")
		return
	}
	response.Message(c, "interview deleted")
}

func (h *Handler) ownedAISession(c *gin.Context, sessionID int64) (model.AIInterviewSession, bool) {
	claims := h.GetClaimsFromContext(c)
	session, err := h.Repository.GetAISessionByID(c.Request.Context(), sessionID)
	if err != nil {
		h.repoError(c, err, "ai session get")
		return model.AIInterviewSession{}, false
	}
	if session.CandidateID != claims.UserID {
		response.Forbidden(c, "not your interview")
		return model.AIInterviewSession{}, false
	}
	return session, true
}

// completeAISession evaluates the transcript and stores the final scores.
// It writes the error response itself on failure.
func (h *Handler) completeAISession(c *gin.Context, session model.AIInterviewSession, transcript string) error {
	ctx := c.Request.Context()
	feedback, origin := h.AI.DetailedFeedback(ctx, transcript, session.Role)
	h.Logger.Sugar().Infow("ai interview evaluated",
		"session_id", session.SessionID, "overall", feedback.OverallScore, "origin", origin.String())

	if err := h.Repository.CompleteAISession(ctx, session.SessionID, feedback); err != nil {
		h.repoError(c, err, "ai session complete")
		return err
	}
	return nil
}
