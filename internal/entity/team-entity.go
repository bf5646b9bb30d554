package entity

import "time"

type TeamEntity struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Color       string    `json:"color"`
	LeadID      *string   `json:"lead_id,omitempty"`
	IsDefault   bool      `json:"is_default"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type TeamMember struct {
	UserID   string    `json:"user_id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     TeamRole  `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

// TeamDetail trägt das Team zusammen mit den populierten Mitgliedern.
type TeamDetail struct {
	TeamEntity
	Lead    *UserRef     `json:"lead,omitempty"`
	Members []TeamMember `json:"members"`
}

// TeamUpdate trägt die änderbaren Felder; nil bedeutet unverändert.
type TeamUpdate struct {
	Name        *string
	Description *string
	Color       *string
	LeadID      *string
	ClearLead   bool
}

type TeamRole string

const (
	TeamLead       TeamRole = "lead"
	TeamDeveloper  TeamRole = "developer"
	TeamDesigner   TeamRole = "designer"
	TeamQA         TeamRole = "qa"
	TeamDevOps     TeamRole = "devops"
	TeamRoleMember TeamRole = "member"
)

func (r TeamRole) IsValid() bool {
	switch r {
	case TeamLead, TeamDeveloper, TeamDesigner, TeamQA, TeamDevOps, TeamRoleMember:
		return true
	}

	return false
}
