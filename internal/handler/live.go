package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/talentflow/talentflow/pkg/model"
	"github.com/talentflow/talentflow/pkg/response"
)

const (
	jitsiDomain     = "meet.jit.si"
	roomPrefix      = "TalentFlow-Interview-"
	defaultDuration = 30
)

// newMeetingID builds a "{applicationID}-{8 hex chars}" meeting identifier.
func newMeetingID(applicationID int64) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", applicationID, suffix)
}

// ScheduleLive books a video interview for an application and notifies the
// candidate.
func (h *Handler) ScheduleLive(c *gin.Context) {
	appID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req model.ScheduleLiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.ScheduledAt.Before(time.Now()) {
		response.BadRequest(c, "scheduled_at must be in the future")
		return
	}
	if req.DurationMinutes < 1 {
		req.DurationMinutes = defaultDuration
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	app, err := h.Repository.GetApplicationByID(ctx, appID)
	if err != nil {
		h.repoError(c, err, "application get")
		return
	}
	job, err := h.Repository.GetJobByID(ctx, app.JobID)
	if err != nil {
		h.repoError(c, err, "job get")
		return
	}
	if job.HRID != claims.UserID {
		response.Forbidden(c, "not your job posting")
		return
	}

	live := &model.LiveInterview{
		ApplicationID:   appID,
		InterviewerID:   claims.UserID,
		ScheduledAt:     req.ScheduledAt,
		MeetingID:       newMeetingID(appID),
		Status:          model.LiveScheduled,
		DurationMinutes: req.DurationMinutes,
	}
	notif := &model.Notification{
		RecipientID: app.CandidateID,
		Title:       "Interview scheduled",
		Message: fmt.Sprintf("Your interview for %s is scheduled at %s.",
			job.Title, req.ScheduledAt.Format(time.RFC1123)),
		Type: model.NotifyInterviewScheduled,
	}

	liveID, err := h.Repository.ScheduleLive(ctx, live, notif)
	if err != nil {
		h.repoError(c, err, "live schedule")
		return
	}
	live.LiveInterviewID = liveID

	response.Created(c, live)
}

// LiveRoom returns what a participant needs to join the meeting. Only the
// interviewer and the candidate on the application may enter.
func (h *Handler) LiveRoom(c *gin.Context) {
	meetingID := c.Param("meeting_id")
	if meetingID == "" {
		response.BadRequest(c, "invalid meeting_id")
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	live, err := h.Repository.GetLiveByMeetingID(ctx, meetingID)
	if err != nil {
		h.repoError(c, err, "live get")
		return
	}
	app, err := h.Repository.GetApplicationByID(ctx, live.ApplicationID)
	if err != nil {
		h.repoError(c, err, "application get")
		return
	}
	if claims.UserID != live.InterviewerID && claims.UserID != app.CandidateID {
		response.Forbidden(c, "not a participant")
		return
	}

	response.OK(c, model.LiveRoomInfo{
		Interview:   live,
		JitsiDomain: jitsiDomain,
		RoomName:    roomPrefix + live.MeetingID,
		IsHR:        claims.UserID == live.InterviewerID,
	})
}

// MyLiveInterviews lists upcoming and past meetings the user is part of.
func (h *Handler) MyLiveInterviews(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	interviews, err := h.Repository.ListLiveForUser(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "live list")
		return
	}
	response.OK(c, interviews)
}

// CancelLive cancels a scheduled meeting and notifies the candidate.
func (h *Handler) CancelLive(c *gin.Context) {
	h.transitionLive(c, model.LiveCancelled)
}

// CompleteLive marks a meeting as held.
func (h *Handler) CompleteLive(c *gin.Context) {
	h.transitionLive(c, model.LiveCompleted)
}

func (h *Handler) transitionLive(c *gin.Context, status model.LiveInterviewStatus) {
	liveID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	claims := h.GetClaimsFromContext(c)

	live, err := h.Repository.GetLiveByID(ctx, liveID)
	if err != nil {
		h.repoError(c, err, "live get")
		return
	}
	if live.InterviewerID != claims.UserID {
		response.Forbidden(c, "not your interview")
		return
	}
	if live.Status != model.LiveScheduled {
		response.Conflict(c, "interview is not scheduled")
		return
	}

	var notif *model.Notification
	if status == model.LiveCancelled {
		app, err := h.Repository.GetApplicationByID(ctx, live.ApplicationID)
		if err != nil {
			h.repoError(c, err, "application get")
			return
		}
		notif = &model.Notification{
			RecipientID: app.CandidateID,
			Title:       "Interview cancelled",
			Message:     "Your scheduled interview has been cancelled.",
			Type:        model.NotifyInterviewCancelled,
		}
	}

	if err := h.Repository.UpdateLiveStatus(ctx, liveID, status, notif); err != nil {
		h.repoError(c, err, "live status update")
		return
	}
	response.Message(c, "interview "+string(status))
}
