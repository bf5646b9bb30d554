package worker_task

const TaskDeliverNotification = "default:deliver_notification"

const TaskSendPasswordResetEmail = "email:send_password_reset"

const TaskDueSoonReminders = "low:due_soon_reminders"

// DeliverNotificationPayload fächert eine Benachrichtigung an mehrere
// Empfänger auf. ProjectID und TaskID sind optional.
type DeliverNotificationPayload struct {
	RecipientIDs []string `json:"recipient_ids"`
	ActorID      string   `json:"actor_id"`
	Type         string   `json:"type"`
	Title        string   `json:"title"`
	Message      string   `json:"message"`
	ProjectID    *string  `json:"project_id,omitempty"`
	TaskID       *string  `json:"task_id,omitempty"`
}

type SendPasswordResetEmailPayload struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	RawToken string `json:"raw_token"`
}
