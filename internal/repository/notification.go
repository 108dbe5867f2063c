package repository

import (
	"context"
	"fmt"

	"github.com/talentflow/talentflow/pkg/model"
)

func (r *Repository) CreateNotification(ctx context.Context, n *model.Notification) (int64, error) {
	const q = `
INSERT INTO notifications (recipient_id, title, message, notification_type, live_interview_id)
VALUES ($1, $2, $3, $4, $5) RETURNING notification_id
`
	var id int64
	row := r.db.QueryRow(ctx, q, n.RecipientID, n.Title, n.Message, n.Type, n.LiveInterviewID)
	if err := row.Scan(&id); err != nil {
		return 0, fmt.Errorf("insert notification: %w", err)
	}
	return id, nil
}

func (r *Repository) ListNotifications(ctx context.Context, recipientID string, unreadOnly bool) ([]model.Notification, error) {
	q := `
SELECT notification_id, recipient_id, title, message, notification_type,
	live_interview_id, is_read, created_at
FROM notifications WHERE recipient_id = $1
`
	if unreadOnly {
		q += " AND is_read = FALSE"
	}
	q += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, q, recipientID)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var out []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.NotificationID, &n.RecipientID, &n.Title, &n.Message,
			&n.Type, &n.LiveInterviewID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkNotificationRead flips a single notification, scoped to its recipient.
func (r *Repository) MarkNotificationRead(ctx context.Context, notificationID int64, recipientID string) error {
	const q = `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND recipient_id = $2`
	tag, err := r.db.Exec(ctx, q, notificationID, recipientID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification %d: %w", notificationID, ErrNotFound)
	}
	return nil
}

func (r *Repository) MarkAllNotificationsRead(ctx context.Context, recipientID string) (int64, error) {
	const q = `UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1 AND is_read = FALSE`
	tag, err := r.db.Exec(ctx, q, recipientID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}
	return tag.RowsAffected(), nil
}
