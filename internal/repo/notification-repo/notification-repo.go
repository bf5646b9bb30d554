package notification_repo

import (
	"context"
	"errors"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepo(db *pgxpool.Pool) NotificationRepoContract {
	return &NotificationRepo{
		db: db,
	}
}

const notificationColumns = `id, user_id, type, title, message, link, related_task_id, related_project_id, is_read, created_at`

func scanNotification(row pgx.Row) (*entity.NotificationEntity, error) {
	var n entity.NotificationEntity
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Type,
		&n.Title,
		&n.Message,
		&n.Link,
		&n.RelatedTaskID,
		&n.RelatedProjectID,
		&n.IsRead,
		&n.CreatedAt,
	)
	return &n, err
}

func (r *NotificationRepo) CreateNotifications(ctx context.Context, notifications []entity.NotificationEntity) *app_errors.AppError {
	if len(notifications) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO notifications (id, user_id, type, title, message, link, related_task_id, related_project_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9)`

	for _, n := range notifications {
		batch.Queue(query, n.ID, n.UserID, n.Type, n.Title, n.Message, n.Link, n.RelatedTaskID, n.RelatedProjectID, n.CreatedAt)
	}

	if err := r.db.SendBatch(ctx, batch).Close(); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *NotificationRepo) ListNotificationsByUser(ctx context.Context, userID string, limit int) ([]entity.NotificationEntity, *app_errors.AppError) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	notifications := []entity.NotificationEntity{}
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		notifications = append(notifications, *n)
	}
	return notifications, nil
}

func (r *NotificationRepo) CountUnread(ctx context.Context, userID string) (int, *app_errors.AppError) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, app_errors.Internal(err)
	}
	return count, nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID, userID string) (*entity.NotificationEntity, *app_errors.AppError) {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1 AND user_id = $2
		RETURNING ` + notificationColumns

	n, err := scanNotification(r.db.QueryRow(ctx, query, notificationID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("notification.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return n, nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID string) *app_errors.AppError {
	if _, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE user_id = $1 AND NOT is_read`, userID); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *NotificationRepo) DeleteNotification(ctx context.Context, notificationID, userID string) *app_errors.AppError {
	tag, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, notificationID, userID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("notification.not_found")
	}
	return nil
}

func (r *NotificationRepo) ClearNotifications(ctx context.Context, userID string) *app_errors.AppError {
	if _, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE user_id = $1`, userID); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}
