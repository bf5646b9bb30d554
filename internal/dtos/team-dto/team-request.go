package team_dto

import (
	"github.com/DevITJAX/FlowOps/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	LeadID      *string `json:"lead_id,omitempty" validate:"omitempty,uuid"`
	IsDefault   bool    `json:"is_default,omitempty"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty" validate:"omitempty,hexcolor"`
	LeadID      *string `json:"lead_id,omitempty" validate:"omitempty,uuid|eq="`
}

type AddTeamMemberRequest struct {
	UserID string  `json:"user_id" validate:"required,uuid"`
	Role   *string `json:"role,omitempty" validate:"omitempty,teamRole"`
}

type UpdateTeamMemberRoleRequest struct {
	Role string `json:"role" validate:"required,teamRole"`
}

func IsValidTeamRole(fl validator.FieldLevel) bool {
	return entity.TeamRole(fl.Field().String()).IsValid()
}
