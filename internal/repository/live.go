package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talentflow/talentflow/pkg/model"
)

// ScheduleLive creates the live interview and the candidate's notification
// in one transaction, so no interview exists without its notification.
func (r *Repository) ScheduleLive(ctx context.Context, live *model.LiveInterview, notif *model.Notification) (int64, error) {
	var liveID int64
	err := r.execTx(ctx, func(tx pgx.Tx) error {
		const q = `
INSERT INTO live_interviews (application_id, interviewer_id, scheduled_at, meeting_id, status, duration_minutes)
VALUES ($1, $2, $3, $4, $5, $6) RETURNING live_interview_id
`
		row := tx.QueryRow(ctx, q,
			live.ApplicationID, live.InterviewerID, live.ScheduledAt,
			live.MeetingID, live.Status, live.DurationMinutes)
		if err := row.Scan(&liveID); err != nil {
			return fmt.Errorf("insert live interview: %w", err)
		}

		const qNotif = `
INSERT INTO notifications (recipient_id, title, message, notification_type, live_interview_id)
VALUES ($1, $2, $3, $4, $5)
`
		if _, err := tx.Exec(ctx, qNotif,
			notif.RecipientID, notif.Title, notif.Message, notif.Type, liveID); err != nil {
			return fmt.Errorf("insert notification: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return liveID, nil
}

const liveCols = `
live_interview_id, application_id, interviewer_id, scheduled_at, meeting_id,
status, duration_minutes, created_at`

func scanLive(row pgx.Row) (model.LiveInterview, error) {
	var l model.LiveInterview
	err := row.Scan(&l.LiveInterviewID, &l.ApplicationID, &l.InterviewerID,
		&l.ScheduledAt, &l.MeetingID, &l.Status, &l.DurationMinutes, &l.CreatedAt)
	return l, err
}

func (r *Repository) GetLiveByMeetingID(ctx context.Context, meetingID string) (model.LiveInterview, error) {
	q := "SELECT " + liveCols + " FROM live_interviews WHERE meeting_id = $1"
	l, err := scanLive(r.db.QueryRow(ctx, q, meetingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LiveInterview{}, fmt.Errorf("meeting %s: %w", meetingID, ErrNotFound)
		}
		return model.LiveInterview{}, fmt.Errorf("scan live interview: %w", err)
	}
	return l, nil
}

func (r *Repository) GetLiveByID(ctx context.Context, liveID int64) (model.LiveInterview, error) {
	q := "SELECT " + liveCols + " FROM live_interviews WHERE live_interview_id = $1"
	l, err := scanLive(r.db.QueryRow(ctx, q, liveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.LiveInterview{}, fmt.Errorf("live interview %d: %w", liveID, ErrNotFound)
		}
		return model.LiveInterview{}, fmt.Errorf("scan live interview: %w", err)
	}
	return l, nil
}

// ListLiveForUser returns interviews the user is part of, either as the
// interviewer or as the candidate on the underlying application.
func (r *Repository) ListLiveForUser(ctx context.Context, userID string) ([]model.LiveInterview, error) {
	const q = `
SELECT l.live_interview_id, l.application_id, l.interviewer_id, l.scheduled_at,
	l.meeting_id, l.status, l.duration_minutes, l.created_at
FROM live_interviews l
JOIN applications a ON a.application_id = l.application_id
WHERE l.interviewer_id = $1 OR a.candidate_id = $1
ORDER BY l.scheduled_at ASC
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query live interviews: %w", err)
	}
	defer rows.Close()

	var out []model.LiveInterview
	for rows.Next() {
		l, err := scanLive(rows)
		if err != nil {
			return nil, fmt.Errorf("scan live row: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// UpdateLiveStatus transitions a live interview and notifies the candidate
// on cancellation.
func (r *Repository) UpdateLiveStatus(ctx context.Context, liveID int64, status model.LiveInterviewStatus, notif *model.Notification) error {
	return r.execTx(ctx, func(tx pgx.Tx) error {
		const q = `UPDATE live_interviews SET status = $1 WHERE live_interview_id = $2`
		tag, err := tx.Exec(ctx, q, status, liveID)
		if err != nil {
			return fmt.Errorf("update live status: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("live interview %d: %w", liveID, ErrNotFound)
		}

		if notif != nil {
			const qNotif = `
INSERT INTO notifications (recipient_id, title, message, notification_type, live_interview_id)
VALUES ($1, $2, $3, $4, $5)
`
			if _, err := tx.Exec(ctx, qNotif,
				notif.RecipientID, notif.Title, notif.Message, notif.Type, liveID); err != nil {
				return fmt.Errorf("insert notification: %w", err)
			}
		}
		return nil
	})
}
