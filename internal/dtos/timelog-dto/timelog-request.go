package timelog_dto

import "time"

type CreateTimeLogRequest struct {
	TimeSpent   int        `json:"time_spent" validate:"required,min=1"`
	Description *string    `json:"description,omitempty"`
	LoggedAt    *time.Time `json:"logged_at,omitempty"`
}

type UpdateTimeLogRequest struct {
	TimeSpent   *int       `json:"time_spent,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty"`
	LoggedAt    *time.Time `json:"logged_at,omitempty"`
}
