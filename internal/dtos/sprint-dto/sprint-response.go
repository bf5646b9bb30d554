package sprint_dto

import "github.com/DevITJAX/FlowOps/internal/entity"

// SprintResponse reichert den Sprint um die abgeleitete Dauer an.
type SprintResponse struct {
	entity.SprintEntity
	DurationDays int `json:"duration_days"`
}

func ToSprintResponse(s *entity.SprintEntity) SprintResponse {
	return SprintResponse{
		SprintEntity: *s,
		DurationDays: s.DurationDays(),
	}
}

type SprintDetailResponse struct {
	SprintResponse
	Stats entity.SprintTaskStats `json:"stats"`
	Tasks []entity.TaskEntity    `json:"tasks"`
}

type BacklogResponse struct {
	Tasks       []entity.TaskEntity `json:"tasks"`
	TotalPoints int                 `json:"total_points"`
}

type VelocityEntry struct {
	SprintID        string `json:"sprint_id"`
	Name            string `json:"name"`
	Velocity        int    `json:"velocity"`
	CompletedPoints int    `json:"completed_points"`
}

type VelocityResponse struct {
	Sprints []VelocityEntry `json:"sprints"`
	Average float64         `json:"average"`
}
