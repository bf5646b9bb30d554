package activity_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	activity_repo "github.com/DevITJAX/FlowOps/internal/repo/activity-repo"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultActivityLimit = 50

type ActivityService struct {
	repo activity_repo.ActivityRepoContract
}

func NewActivityService(db *pgxpool.Pool) ActivityServiceContract {
	return &ActivityService{
		repo: activity_repo.NewActivityRepo(db),
	}
}

// ListRecent liefert den globalen Aktivitätsstrom; der ist Administratoren
// vorbehalten.
func (s *ActivityService) ListRecent(ctx context.Context, actor authz.Actor, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	if actor.Role != entity.RoleAdmin {
		return nil, app_errors.Forbidden("forbidden")
	}

	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.repo.ListActivities(ctx, limit)
}

func (s *ActivityService) ListByUser(ctx context.Context, actor authz.Actor, userID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	if actor.Role != entity.RoleAdmin && actor.ID != userID {
		return nil, app_errors.Forbidden("forbidden")
	}

	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.repo.ListActivitiesByUser(ctx, userID, limit)
}

func (s *ActivityService) ListByTarget(ctx context.Context, actor authz.Actor, targetType, targetID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	return s.repo.ListActivitiesByTarget(ctx, targetType, targetID, limit)
}
