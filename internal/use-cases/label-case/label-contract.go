package label_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	label_dto "github.com/DevITJAX/FlowOps/internal/dtos/label-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type LabelServiceContract interface {
	CreateLabel(ctx context.Context, actor authz.Actor, projectID string, req *label_dto.CreateLabelRequest) (*entity.LabelEntity, *app_errors.AppError)
	ListLabels(ctx context.Context, actor authz.Actor, projectID string) ([]entity.LabelEntity, *app_errors.AppError)
	UpdateLabel(ctx context.Context, actor authz.Actor, labelID string, req *label_dto.UpdateLabelRequest) (*entity.LabelEntity, *app_errors.AppError)
	DeleteLabel(ctx context.Context, actor authz.Actor, labelID string) *app_errors.AppError
}
