package notification_dto

import "github.com/DevITJAX/FlowOps/internal/entity"

type ListNotificationsResponse struct {
	Notifications []entity.NotificationEntity `json:"notifications"`
	UnreadCount   int                         `json:"unread_count"`
}
