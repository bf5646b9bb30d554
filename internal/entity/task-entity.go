package entity

import (
	"slices"
	"time"
)

type TaskEntity struct {
	ID                string       `json:"id"`
	ProjectID         string       `json:"project_id"`
	TaskKey           string       `json:"task_key"`
	Title             string       `json:"title"`
	Description       *string      `json:"description,omitempty"`
	Type              TaskType     `json:"type"`
	Status            TaskStatus   `json:"status"`
	Priority          TaskPriority `json:"priority"`
	StoryPoints       int          `json:"story_points"`
	OriginalEstimate  int          `json:"original_estimate"`
	TimeSpent         int          `json:"time_spent"`
	RemainingEstimate int          `json:"remaining_estimate"`
	DueDate           *time.Time   `json:"due_date,omitempty"`
	AssigneeID        *string      `json:"assignee_id,omitempty"`
	ReporterID        string       `json:"reporter_id"`
	ParentID          *string      `json:"parent_id,omitempty"`
	SprintID          *string      `json:"sprint_id,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         *time.Time   `json:"updated_at,omitempty"`
}

// TaskDetail trägt die Aufgabe zusammen mit den populierten Referenzen.
type TaskDetail struct {
	TaskEntity
	Assignee *UserRef      `json:"assignee,omitempty"`
	Reporter UserRef       `json:"reporter"`
	Labels   []LabelEntity `json:"labels"`
	Watchers []UserRef     `json:"watchers,omitempty"`
}

// TaskUpdate trägt die änderbaren Felder; nil bedeutet unverändert.
// Die Clear-Flags setzen optionale Referenzen explizit auf NULL.
type TaskUpdate struct {
	Title            *string
	Description      *string
	Type             *TaskType
	Status           *TaskStatus
	Priority         *TaskPriority
	StoryPoints      *int
	OriginalEstimate *int
	DueDate          *time.Time
	AssigneeID       *string
	ParentID         *string
	ClearDueDate     bool
	ClearAssignee    bool
	ClearParent      bool
}

// TaskListFilter schränkt die Aufgabenliste eines Projekts ein.
type TaskListFilter struct {
	Status     *TaskStatus
	Type       *TaskType
	Priority   *TaskPriority
	AssigneeID *string
	SprintID   *string
}

type TaskStatus string

const (
	TaskTodo   TaskStatus = "todo"
	TaskDoing  TaskStatus = "doing"
	TaskReview TaskStatus = "review"
	TaskDone   TaskStatus = "done"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskTodo, TaskDoing, TaskReview, TaskDone:
		return true
	}

	return false
}

type TaskType string

const (
	TypeTask    TaskType = "task"
	TypeBug     TaskType = "bug"
	TypeStory   TaskType = "story"
	TypeEpic    TaskType = "epic"
	TypeSubtask TaskType = "subtask"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TypeTask, TypeBug, TypeStory, TypeEpic, TypeSubtask:
		return true
	}

	return false
}

type TaskPriority string

const (
	PriorityLowest  TaskPriority = "lowest"
	PriorityLow     TaskPriority = "low"
	PriorityMedium  TaskPriority = "medium"
	PriorityHigh    TaskPriority = "high"
	PriorityHighest TaskPriority = "highest"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLowest, PriorityLow, PriorityMedium, PriorityHigh, PriorityHighest:
		return true
	}

	return false
}

// StoryPointValues sind die einzig zulässigen Story-Point-Werte (Fibonacci-Skala).
var StoryPointValues = []int{0, 1, 2, 3, 5, 8, 13, 21}

func IsValidStoryPoints(v int) bool {
	return slices.Contains(StoryPointValues, v)
}
