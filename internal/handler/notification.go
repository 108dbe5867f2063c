package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/pkg/response"
)

// MyNotifications lists the user's notifications, optionally unread only.
func (h *Handler) MyNotifications(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.Repository.ListNotifications(c.Request.Context(), claims.UserID, unreadOnly)
	if err != nil {
		h.repoError(c, err, "notification list")
		return
	}
	response.OK(c, notifications)
}

func (h *Handler) MarkNotificationRead(c *gin.Context) {
	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	claims := h.GetClaimsFromContext(c)
	if err := h.Repository.MarkNotificationRead(c.Request.Context(), notificationID, claims.UserID); err != nil {
		h.repoError(c, err, "notification mark read")
		return
	}
	response.Message(c, "notification read")
}

func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	updated, err := h.Repository.MarkAllNotificationsRead(c.Request.Context(), claims.UserID)
	if err != nil {
		h.repoError(c, err, "notification mark all read")
		return
	}
	response.OK(c, gin.H{"updated": updated})
}
