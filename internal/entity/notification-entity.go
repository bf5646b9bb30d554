package entity

import "time"

type NotificationEntity struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	Type             NotificationType `json:"type"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	Link             *string          `json:"link,omitempty"`
	RelatedTaskID    *string          `json:"related_task_id,omitempty"`
	RelatedProjectID *string          `json:"related_project_id,omitempty"`
	IsRead           bool             `json:"is_read"`
	CreatedAt        time.Time        `json:"created_at"`
}

type NotificationType string

const (
	NotifyAssigned        NotificationType = "assigned"
	NotifyMentioned       NotificationType = "mentioned"
	NotifyComment         NotificationType = "comment"
	NotifyStatusChange    NotificationType = "status_change"
	NotifySprintStarted   NotificationType = "sprint_started"
	NotifySprintCompleted NotificationType = "sprint_completed"
	NotifyDueSoon         NotificationType = "due_soon"
)
