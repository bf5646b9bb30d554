package notification_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type NotificationRepoContract interface {
	CreateNotifications(ctx context.Context, notifications []entity.NotificationEntity) *app_errors.AppError
	ListNotificationsByUser(ctx context.Context, userID string, limit int) ([]entity.NotificationEntity, *app_errors.AppError)
	CountUnread(ctx context.Context, userID string) (int, *app_errors.AppError)
	// MarkRead und DeleteNotification prüfen die Eigentümerschaft mit.
	MarkRead(ctx context.Context, notificationID, userID string) (*entity.NotificationEntity, *app_errors.AppError)
	MarkAllRead(ctx context.Context, userID string) *app_errors.AppError
	DeleteNotification(ctx context.Context, notificationID, userID string) *app_errors.AppError
	ClearNotifications(ctx context.Context, userID string) *app_errors.AppError
}
