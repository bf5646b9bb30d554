package activity_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type ActivityRepoContract interface {
	CreateActivity(ctx context.Context, activity *entity.ActivityEntity) *app_errors.AppError
	ListActivities(ctx context.Context, limit int) ([]entity.ActivityDetail, *app_errors.AppError)
	ListActivitiesByUser(ctx context.Context, userID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError)
	ListActivitiesByTarget(ctx context.Context, targetType, targetID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError)
}
