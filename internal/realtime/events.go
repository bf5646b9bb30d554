package realtime

// Ereignisnamen für Projekt- und Benutzer-Räume.
const (
	EventTaskCreated     = "task:created"
	EventTaskUpdated     = "task:updated"
	EventTaskDeleted     = "task:deleted"
	EventCommentAdded    = "comment:added"
	EventCommentUpdated  = "comment:updated"
	EventCommentDeleted  = "comment:deleted"
	EventSprintStarted   = "sprint:started"
	EventSprintCompleted = "sprint:completed"
	EventNotification    = "notification:new"
)
