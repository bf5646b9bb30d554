package activity_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type ActivityServiceContract interface {
	ListRecent(ctx context.Context, actor authz.Actor, limit int) ([]entity.ActivityDetail, *app_errors.AppError)
	ListByUser(ctx context.Context, actor authz.Actor, userID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError)
	ListByTarget(ctx context.Context, actor authz.Actor, targetType, targetID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError)
}
