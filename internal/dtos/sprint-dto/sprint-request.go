package sprint_dto

import "time"

type CreateSprintRequest struct {
	Name      string    `json:"name" validate:"required,min=2"`
	Goal      *string   `json:"goal,omitempty"`
	StartDate time.Time `json:"start_date" validate:"required"`
	EndDate   time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}

type UpdateSprintRequest struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,min=2"`
	Goal      *string    `json:"goal,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

type CompleteSprintRequest struct {
	MoveToBacklog bool `json:"move_to_backlog"`
}

type SprintTasksRequest struct {
	TaskIDs []string `json:"task_ids" validate:"required,min=1,dive,uuid"`
}
