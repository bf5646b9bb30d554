package sprint_repo

import (
	"context"
	"errors"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SprintRepo struct {
	db *pgxpool.Pool
}

func NewSprintRepo(db *pgxpool.Pool) SprintRepoContract {
	return &SprintRepo{
		db: db,
	}
}

const sprintColumns = `id, project_id, name, goal, status, start_date, end_date, velocity, completed_points, created_by, created_at`

func scanSprint(row pgx.Row) (*entity.SprintEntity, error) {
	var s entity.SprintEntity
	err := row.Scan(
		&s.ID,
		&s.ProjectID,
		&s.Name,
		&s.Goal,
		&s.Status,
		&s.StartDate,
		&s.EndDate,
		&s.Velocity,
		&s.CompletedPoints,
		&s.CreatedBy,
		&s.CreatedAt,
	)
	return &s, err
}

func (r *SprintRepo) CreateSprint(ctx context.Context, sprint *entity.SprintEntity) (*entity.SprintEntity, *app_errors.AppError) {
	query := `
		INSERT INTO sprints (id, project_id, name, goal, status, start_date, end_date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + sprintColumns

	row := r.db.QueryRow(ctx, query,
		sprint.ID,
		sprint.ProjectID,
		sprint.Name,
		sprint.Goal,
		sprint.Status,
		sprint.StartDate,
		sprint.EndDate,
		sprint.CreatedBy,
		sprint.CreatedAt,
	)

	created, err := scanSprint(row)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return created, nil
}

func (r *SprintRepo) FindSprintByID(ctx context.Context, sprintID string) (*entity.SprintEntity, *app_errors.AppError) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE id = $1 LIMIT 1`

	s, err := scanSprint(r.db.QueryRow(ctx, query, sprintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("sprint.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return s, nil
}

func (r *SprintRepo) ListSprintsByProject(ctx context.Context, projectID string) ([]entity.SprintEntity, *app_errors.AppError) {
	query := `SELECT ` + sprintColumns + ` FROM sprints WHERE project_id = $1 ORDER BY start_date`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	sprints := []entity.SprintEntity{}
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		sprints = append(sprints, *s)
	}
	return sprints, nil
}

func (r *SprintRepo) UpdateSprint(ctx context.Context, sprintID string, model entity.SprintUpdate) (*entity.SprintEntity, *app_errors.AppError) {
	query := `
		UPDATE sprints
		SET name = COALESCE($1, name),
			goal = COALESCE($2, goal),
			start_date = COALESCE($3, start_date),
			end_date = COALESCE($4, end_date)
		WHERE id = $5
		RETURNING ` + sprintColumns

	s, err := scanSprint(r.db.QueryRow(ctx, query, model.Name, model.Goal, model.StartDate, model.EndDate, sprintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("sprint.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return s, nil
}

func (r *SprintRepo) DeleteSprint(ctx context.Context, t tx.Tx, sprintID string) *app_errors.AppError {
	tag, err := tx.Unwrap(t).Exec(ctx, `DELETE FROM sprints WHERE id = $1`, sprintID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("sprint.not_found")
	}
	return nil
}

func (r *SprintRepo) ActivateSprint(ctx context.Context, t tx.Tx, sprintID string) (*entity.SprintEntity, *app_errors.AppError) {
	query := `
		UPDATE sprints
		SET status = 'active'
		WHERE id = $1 AND status = 'planned'
		RETURNING ` + sprintColumns

	s, err := scanSprint(tx.Unwrap(t).QueryRow(ctx, query, sprintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.Conflict("sprint.not_planned")
		}
		return nil, app_errors.MapPgxError(err, "sprint.already_active")
	}
	return s, nil
}

func (r *SprintRepo) CompleteSprint(ctx context.Context, t tx.Tx, sprintID string, completedPoints int) (*entity.SprintEntity, *app_errors.AppError) {
	query := `
		UPDATE sprints
		SET status = 'completed',
			completed_points = $1,
			velocity = $1
		WHERE id = $2 AND status = 'active'
		RETURNING ` + sprintColumns

	s, err := scanSprint(tx.Unwrap(t).QueryRow(ctx, query, completedPoints, sprintID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.Conflict("sprint.not_active")
		}
		return nil, app_errors.Internal(err)
	}
	return s, nil
}

func (r *SprintRepo) GetTaskStats(ctx context.Context, sprintID string) (*entity.SprintTaskStats, *app_errors.AppError) {
	query := `
		SELECT
			COALESCE(SUM(story_points), 0),
			COALESCE(SUM(story_points) FILTER (WHERE status = 'done'), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'done')
		FROM tasks
		WHERE sprint_id = $1`

	var stats entity.SprintTaskStats
	if err := r.db.QueryRow(ctx, query, sprintID).Scan(
		&stats.TotalPoints, &stats.CompletedPoints, &stats.TaskCount, &stats.CompletedCount,
	); err != nil {
		return nil, app_errors.Internal(err)
	}
	return &stats, nil
}

func (r *SprintRepo) ListCompletedSprints(ctx context.Context, projectID string, limit int) ([]entity.SprintEntity, *app_errors.AppError) {
	query := `
		SELECT ` + sprintColumns + `
		FROM sprints
		WHERE project_id = $1 AND status = 'completed'
		ORDER BY end_date DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	sprints := []entity.SprintEntity{}
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		sprints = append(sprints, *s)
	}
	return sprints, nil
}
