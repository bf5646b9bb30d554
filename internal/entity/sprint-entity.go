package entity

import (
	"math"
	"time"
)

type SprintEntity struct {
	ID              string       `json:"id"`
	ProjectID       string       `json:"project_id"`
	Name            string       `json:"name"`
	Goal            *string      `json:"goal,omitempty"`
	Status          SprintStatus `json:"status"`
	StartDate       time.Time    `json:"start_date"`
	EndDate         time.Time    `json:"end_date"`
	Velocity        int          `json:"velocity"`
	CompletedPoints int          `json:"completed_points"`
	CreatedBy       string       `json:"created_by"`
	CreatedAt       time.Time    `json:"created_at"`
}

// DurationDays liefert die Sprintdauer in Tagen (aufgerundet).
func (s *SprintEntity) DurationDays() int {
	diff := s.EndDate.Sub(s.StartDate)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// SprintUpdate trägt die änderbaren Felder; nil bedeutet unverändert.
type SprintUpdate struct {
	Name      *string
	Goal      *string
	StartDate *time.Time
	EndDate   *time.Time
}

// SprintTaskStats sind die Aggregatwerte der Aufgaben eines Sprints.
type SprintTaskStats struct {
	TotalPoints     int `json:"total_points"`
	CompletedPoints int `json:"completed_points"`
	TaskCount       int `json:"task_count"`
	CompletedCount  int `json:"completed_count"`
}

type SprintStatus string

const (
	SprintPlanned   SprintStatus = "planned"
	SprintActive    SprintStatus = "active"
	SprintCompleted SprintStatus = "completed"
)

func (s SprintStatus) IsValid() bool {
	switch s {
	case SprintPlanned, SprintActive, SprintCompleted:
		return true
	}

	return false
}
