package project_dto

import (
	"github.com/DevITJAX/FlowOps/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateProjectRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Key         *string `json:"key,omitempty" validate:"omitempty,min=2,max=10,alphanum"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,projectStatus"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,projectStatus"`
}

type ParamProjectID struct {
	ID string `params:"id" validate:"required,uuid"`
}

type AddMemberRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}

func IsValidProjectStatus(fl validator.FieldLevel) bool {
	return entity.ProjectStatus(fl.Field().String()).IsValid()
}
