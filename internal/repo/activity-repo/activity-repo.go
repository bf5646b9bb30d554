package activity_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityRepo struct {
	db *pgxpool.Pool
}

func NewActivityRepo(db *pgxpool.Pool) ActivityRepoContract {
	return &ActivityRepo{
		db: db,
	}
}

func (r *ActivityRepo) CreateActivity(ctx context.Context, activity *entity.ActivityEntity) *app_errors.AppError {
	query := `
		INSERT INTO activities (id, user_id, action, target_type, target_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := r.db.Exec(ctx, query,
		activity.ID,
		activity.UserID,
		activity.Action,
		activity.TargetType,
		activity.TargetID,
		activity.Details,
		activity.CreatedAt,
	); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *ActivityRepo) list(ctx context.Context, where string, args ...any) ([]entity.ActivityDetail, *app_errors.AppError) {
	query := `
		SELECT a.id, a.user_id, a.action, a.target_type, a.target_id, a.details, a.created_at,
			u.id, u.name, u.email
		FROM activities a
		JOIN users u ON u.id = a.user_id
		` + where + `
		ORDER BY a.created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	activities := []entity.ActivityDetail{}
	for rows.Next() {
		var d entity.ActivityDetail
		if err := rows.Scan(
			&d.ID, &d.UserID, &d.Action, &d.TargetType, &d.TargetID, &d.Details, &d.CreatedAt,
			&d.User.ID, &d.User.Name, &d.User.Email,
		); err != nil {
			return nil, app_errors.Internal(err)
		}
		activities = append(activities, d)
	}
	return activities, nil
}

func (r *ActivityRepo) ListActivities(ctx context.Context, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	return r.list(ctx, "", limit)
}

func (r *ActivityRepo) ListActivitiesByUser(ctx context.Context, userID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	return r.list(ctx, "WHERE a.user_id = $2", limit, userID)
}

func (r *ActivityRepo) ListActivitiesByTarget(ctx context.Context, targetType, targetID string, limit int) ([]entity.ActivityDetail, *app_errors.AppError) {
	return r.list(ctx, "WHERE a.target_type = $2 AND a.target_id = $3", limit, targetType, targetID)
}
