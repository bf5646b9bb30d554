package entity

import "time"

// ActivityEntity ist ein Eintrag im append-only Aktivitätsprotokoll.
type ActivityEntity struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	Action     string         `json:"action"`
	TargetType string         `json:"target_type"`
	TargetID   string         `json:"target_id"`
	Details    map[string]any `json:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ActivityDetail struct {
	ActivityEntity
	User UserRef `json:"user"`
}
