package task_dto

import (
	"time"

	"github.com/DevITJAX/FlowOps/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateTaskRequest struct {
	Title            string     `json:"title" validate:"required"`
	Description      *string    `json:"description,omitempty"`
	Type             *string    `json:"type,omitempty" validate:"omitempty,taskType"`
	Status           *string    `json:"status,omitempty" validate:"omitempty,taskStatus"`
	Priority         *string    `json:"priority,omitempty" validate:"omitempty,taskPriority"`
	StoryPoints      *int       `json:"story_points,omitempty" validate:"omitempty,storyPoints"`
	OriginalEstimate *int       `json:"original_estimate,omitempty" validate:"omitempty,min=0"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	AssigneeID       *string    `json:"assignee_id,omitempty" validate:"omitempty,uuid"`
	ParentID         *string    `json:"parent_id,omitempty" validate:"omitempty,uuid"`
	SprintID         *string    `json:"sprint_id,omitempty" validate:"omitempty,uuid"`
	LabelIDs         []string   `json:"label_ids,omitempty" validate:"omitempty,dive,uuid"`
}

// UpdateTaskRequest: nil lässt ein Feld unverändert, ein leerer String bei
// assignee_id/parent_id bzw. due_date im Nullwert löscht die Referenz.
type UpdateTaskRequest struct {
	Title            *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description      *string    `json:"description,omitempty"`
	Type             *string    `json:"type,omitempty" validate:"omitempty,taskType"`
	Status           *string    `json:"status,omitempty" validate:"omitempty,taskStatus"`
	Priority         *string    `json:"priority,omitempty" validate:"omitempty,taskPriority"`
	StoryPoints      *int       `json:"story_points,omitempty" validate:"omitempty,storyPoints"`
	OriginalEstimate *int       `json:"original_estimate,omitempty" validate:"omitempty,min=0"`
	DueDate          *time.Time `json:"due_date,omitempty"`
	ClearDueDate     bool       `json:"clear_due_date,omitempty"`
	AssigneeID       *string    `json:"assignee_id,omitempty" validate:"omitempty,uuid|eq="`
	ParentID         *string    `json:"parent_id,omitempty" validate:"omitempty,uuid|eq="`
	LabelIDs         []string   `json:"label_ids,omitempty" validate:"omitempty,dive,uuid"`
}

type TaskListQuery struct {
	Status     *string `query:"status" validate:"omitempty,taskStatus"`
	Type       *string `query:"type" validate:"omitempty,taskType"`
	Priority   *string `query:"priority" validate:"omitempty,taskPriority"`
	AssigneeID *string `query:"assignee_id" validate:"omitempty,uuid"`
	SprintID   *string `query:"sprint_id" validate:"omitempty,uuid"`
}

type ParamTaskID struct {
	ID string `params:"id" validate:"required,uuid"`
}

func IsValidTaskStatus(fl validator.FieldLevel) bool {
	return entity.TaskStatus(fl.Field().String()).IsValid()
}

func IsValidTaskType(fl validator.FieldLevel) bool {
	return entity.TaskType(fl.Field().String()).IsValid()
}

func IsValidTaskPriority(fl validator.FieldLevel) bool {
	return entity.TaskPriority(fl.Field().String()).IsValid()
}

func IsValidStoryPoints(fl validator.FieldLevel) bool {
	return entity.IsValidStoryPoints(int(fl.Field().Int()))
}
