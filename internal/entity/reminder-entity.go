package entity

import "time"

// DueSoonTask ist die Projektion für die tägliche Fälligkeits-Erinnerung.
type DueSoonTask struct {
	TaskID        string    `json:"task_id"`
	TaskKey       string    `json:"task_key"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	DueDate       time.Time `json:"due_date"`
	ProjectID     string    `json:"project_id"`
	ProjectName   string    `json:"project_name"`
	AssigneeID    string    `json:"assignee_id"`
	AssigneeName  string    `json:"assignee_name"`
	EmailAssignee string    `json:"email_assignee"`
}
