package model

import "time"

type NotificationType string

const (
	NotifyInterviewScheduled NotificationType = "interview_scheduled"
	NotifyInterviewCancelled NotificationType = "interview_cancelled"
	NotifyGeneral            NotificationType = "general"
)

type Notification struct {
	NotificationID  int64            `json:"notification_id" db:"notification_id"`
	RecipientID     string           `json:"recipient_id" db:"recipient_id"`
	Title           string           `json:"title" db:"title"`
	Message         string           `json:"message" db:"message"`
	Type            NotificationType `json:"notification_type" db:"notification_type"`
	LiveInterviewID *int64           `json:"live_interview_id" db:"live_interview_id"`
	IsRead          bool             `json:"is_read" db:"is_read"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
}

type LiveInterviewStatus string

const (
	LiveScheduled LiveInterviewStatus = "scheduled"
	LiveCompleted LiveInterviewStatus = "completed"
	LiveCancelled LiveInterviewStatus = "cancelled"
)

type LiveInterview struct {
	LiveInterviewID int64               `json:"live_interview_id" db:"live_interview_id"`
	ApplicationID   int64               `json:"application_id" db:"application_id"`
	InterviewerID   string              `json:"interviewer_id" db:"interviewer_id"`
	ScheduledAt     time.Time           `json:"scheduled_at" db:"scheduled_at"`
	MeetingID       string              `json:"meeting_id" db:"meeting_id"`
	Status          LiveInterviewStatus `json:"status" db:"status"`
	DurationMinutes int                 `json:"duration_minutes" db:"duration_minutes"`
	CreatedAt       time.Time           `json:"created_at" db:"created_at"`
}

type ScheduleLiveRequest struct {
	ScheduledAt     time.Time `json:"scheduled_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes"`
}

type LiveRoomInfo struct {
	Interview   LiveInterview `json:"interview"`
	JitsiDomain string        `json:"jitsi_domain"`
	RoomName    string        `json:"room_name"`
	IsHR        bool          `json:"is_hr"`
}
