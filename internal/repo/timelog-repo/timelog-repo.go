package timelog_repo

import (
	"context"
	"errors"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimeLogRepo struct {
	db *pgxpool.Pool
}

func NewTimeLogRepo(db *pgxpool.Pool) TimeLogRepoContract {
	return &TimeLogRepo{
		db: db,
	}
}

const timeLogColumns = `id, task_id, user_id, time_spent, description, logged_at, created_at`

func scanTimeLog(row pgx.Row) (*entity.TimeLogEntity, error) {
	var l entity.TimeLogEntity
	err := row.Scan(
		&l.ID,
		&l.TaskID,
		&l.UserID,
		&l.TimeSpent,
		&l.Description,
		&l.LoggedAt,
		&l.CreatedAt,
	)
	return &l, err
}

func (r *TimeLogRepo) CreateTimeLog(ctx context.Context, t tx.Tx, timeLog *entity.TimeLogEntity) (*entity.TimeLogEntity, *app_errors.AppError) {
	query := `
		INSERT INTO time_logs (id, task_id, user_id, time_spent, description, logged_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + timeLogColumns

	created, err := scanTimeLog(tx.Unwrap(t).QueryRow(ctx, query,
		timeLog.ID,
		timeLog.TaskID,
		timeLog.UserID,
		timeLog.TimeSpent,
		timeLog.Description,
		timeLog.LoggedAt,
		timeLog.CreatedAt,
	))
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	return created, nil
}

func (r *TimeLogRepo) FindTimeLogByID(ctx context.Context, timeLogID string) (*entity.TimeLogEntity, *app_errors.AppError) {
	l, err := scanTimeLog(r.db.QueryRow(ctx, `SELECT `+timeLogColumns+` FROM time_logs WHERE id = $1 LIMIT 1`, timeLogID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("timelog.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return l, nil
}

func (r *TimeLogRepo) ListTimeLogsByTask(ctx context.Context, taskID string) ([]entity.TimeLogDetail, *app_errors.AppError) {
	query := `
		SELECT l.id, l.task_id, l.user_id, l.time_spent, l.description, l.logged_at, l.created_at,
			u.id, u.name, u.email
		FROM time_logs l
		JOIN users u ON u.id = l.user_id
		WHERE l.task_id = $1
		ORDER BY l.logged_at DESC`

	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	logs := []entity.TimeLogDetail{}
	for rows.Next() {
		var d entity.TimeLogDetail
		if err := rows.Scan(
			&d.ID, &d.TaskID, &d.UserID, &d.TimeSpent, &d.Description, &d.LoggedAt, &d.CreatedAt,
			&d.User.ID, &d.User.Name, &d.User.Email,
		); err != nil {
			return nil, app_errors.Internal(err)
		}
		logs = append(logs, d)
	}
	return logs, nil
}

func (r *TimeLogRepo) UpdateTimeLog(ctx context.Context, t tx.Tx, timeLogID string, timeSpent *int, description *string, loggedAt *time.Time) (*entity.TimeLogEntity, *app_errors.AppError) {
	query := `
		UPDATE time_logs
		SET time_spent = COALESCE($1, time_spent),
			description = COALESCE($2, description),
			logged_at = COALESCE($3, logged_at)
		WHERE id = $4
		RETURNING ` + timeLogColumns

	l, err := scanTimeLog(tx.Unwrap(t).QueryRow(ctx, query, timeSpent, description, loggedAt, timeLogID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("timelog.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return l, nil
}

func (r *TimeLogRepo) DeleteTimeLog(ctx context.Context, t tx.Tx, timeLogID string) *app_errors.AppError {
	tag, err := tx.Unwrap(t).Exec(ctx, `DELETE FROM time_logs WHERE id = $1`, timeLogID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("timelog.not_found")
	}
	return nil
}

func (r *TimeLogRepo) SumForTask(ctx context.Context, t tx.Tx, taskID string) (int, *app_errors.AppError) {
	var sum int
	query := `SELECT COALESCE(SUM(time_spent), 0) FROM time_logs WHERE task_id = $1`
	if err := tx.Unwrap(t).QueryRow(ctx, query, taskID).Scan(&sum); err != nil {
		return 0, app_errors.Internal(err)
	}
	return sum, nil
}
