package notification_case

import (
	"context"

	notification_dto "github.com/DevITJAX/FlowOps/internal/dtos/notification-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type NotificationServiceContract interface {
	ListNotifications(ctx context.Context, userID string, limit int) (*notification_dto.ListNotificationsResponse, *app_errors.AppError)
	MarkRead(ctx context.Context, userID, notificationID string) (*entity.NotificationEntity, *app_errors.AppError)
	MarkAllRead(ctx context.Context, userID string) *app_errors.AppError
	DeleteNotification(ctx context.Context, userID, notificationID string) *app_errors.AppError
	ClearNotifications(ctx context.Context, userID string) *app_errors.AppError
}
