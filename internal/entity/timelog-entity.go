package entity

import "time"

type TimeLogEntity struct {
	ID          string    `json:"id"`
	TaskID      string    `json:"task_id"`
	UserID      string    `json:"user_id"`
	TimeSpent   int       `json:"time_spent"` // Minuten, mindestens 1
	Description *string   `json:"description,omitempty"`
	LoggedAt    time.Time `json:"logged_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type TimeLogDetail struct {
	TimeLogEntity
	User UserRef `json:"user"`
}
