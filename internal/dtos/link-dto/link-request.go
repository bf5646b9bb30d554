package link_dto

import (
	"github.com/DevITJAX/FlowOps/internal/entity"
	"github.com/go-playground/validator/v10"
)

type CreateLinkRequest struct {
	TargetTaskID string `json:"target_task_id" validate:"required,uuid"`
	LinkType     string `json:"link_type" validate:"required,linkType"`
}

func IsValidLinkType(fl validator.FieldLevel) bool {
	return entity.LinkType(fl.Field().String()).IsValid()
}
