package entity

import "time"

type ProjectEntity struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Key         string        `json:"key"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	OwnerID     string        `json:"owner_id"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at,omitempty"`
}

// ProjectDetail trägt das Projekt zusammen mit den populierten Benutzerreferenzen.
// Invariante: der Owner taucht niemals zusätzlich in Members auf.
type ProjectDetail struct {
	ProjectEntity
	Owner   UserRef   `json:"owner"`
	Members []UserRef `json:"members"`
}

// ProjectUpdate trägt die änderbaren Felder; nil bedeutet unverändert.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *ProjectStatus
}

type ProjectStatus string

const (
	ProjectPlanned    ProjectStatus = "planned"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
)

func (s ProjectStatus) IsValid() bool {
	switch s {
	case ProjectPlanned, ProjectInProgress, ProjectCompleted:
		return true
	}

	return false
}
