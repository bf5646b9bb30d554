package search_dto

import "github.com/DevITJAX/FlowOps/internal/entity"

type SearchQuery struct {
	Q     string `query:"q" validate:"required,min=1"`
	Type  string `query:"type" validate:"omitempty,oneof=all tasks projects users"`
	Limit int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

type SearchResponse struct {
	Tasks    []entity.TaskEntity    `json:"tasks,omitempty"`
	Projects []entity.ProjectEntity `json:"projects,omitempty"`
	Users    []entity.UserRef       `json:"users,omitempty"`
}
