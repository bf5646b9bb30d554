package notification_case

import (
	"context"

	notification_dto "github.com/DevITJAX/FlowOps/internal/dtos/notification-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	notification_repo "github.com/DevITJAX/FlowOps/internal/repo/notification-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultNotificationLimit = 50

type NotificationService struct {
	repo notification_repo.NotificationRepoContract
}

func NewNotificationService(db *pgxpool.Pool) NotificationServiceContract {
	return &NotificationService{
		repo: notification_repo.NewNotificationRepo(db),
	}
}

func (s *NotificationService) ListNotifications(ctx context.Context, userID string, limit int) (*notification_dto.ListNotificationsResponse, *app_errors.AppError) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	notifications, appErr := s.repo.ListNotificationsByUser(ctx, userID, limit)
	if appErr != nil {
		return nil, appErr
	}

	unread, appErr := s.repo.CountUnread(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	return &notification_dto.ListNotificationsResponse{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*entity.NotificationEntity, *app_errors.AppError) {
	return s.repo.MarkRead(ctx, notificationID, userID)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) *app_errors.AppError {
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *NotificationService) DeleteNotification(ctx context.Context, userID, notificationID string) *app_errors.AppError {
	return s.repo.DeleteNotification(ctx, notificationID, userID)
}

func (s *NotificationService) ClearNotifications(ctx context.Context, userID string) *app_errors.AppError {
	return s.repo.ClearNotifications(ctx, userID)
}
