package task_repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepo(db *pgxpool.Pool) TaskRepoContract {
	return &TaskRepo{
		db: db,
	}
}

const taskColumns = `id, project_id, task_key, title, description, type, status, priority,
	story_points, original_estimate, time_spent, remaining_estimate,
	due_date, assignee_id, reporter_id, parent_id, sprint_id, created_at, updated_at`

func scanTask(row pgx.Row) (*entity.TaskEntity, error) {
	var t entity.TaskEntity
	err := row.Scan(
		&t.ID,
		&t.ProjectID,
		&t.TaskKey,
		&t.Title,
		&t.Description,
		&t.Type,
		&t.Status,
		&t.Priority,
		&t.StoryPoints,
		&t.OriginalEstimate,
		&t.TimeSpent,
		&t.RemainingEstimate,
		&t.DueDate,
		&t.AssigneeID,
		&t.ReporterID,
		&t.ParentID,
		&t.SprintID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return &t, err
}

func (r *TaskRepo) NextTaskSeq(ctx context.Context, t tx.Tx, projectID string) (int, *app_errors.AppError) {
	query := `
		INSERT INTO project_counters (project_id, seq)
		VALUES ($1, 1)
		ON CONFLICT (project_id) DO UPDATE SET seq = project_counters.seq + 1
		RETURNING seq`

	var seq int
	if err := tx.Unwrap(t).QueryRow(ctx, query, projectID).Scan(&seq); err != nil {
		return 0, app_errors.MapPgxError(err)
	}
	return seq, nil
}

func (r *TaskRepo) CreateTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) (*entity.TaskEntity, *app_errors.AppError) {
	query := `
		INSERT INTO tasks (id, project_id, task_key, title, description, type, status, priority,
			story_points, original_estimate, time_spent, remaining_estimate,
			due_date, assignee_id, reporter_id, parent_id, sprint_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + taskColumns

	row := tx.Unwrap(t).QueryRow(ctx, query,
		task.ID,
		task.ProjectID,
		task.TaskKey,
		task.Title,
		task.Description,
		task.Type,
		task.Status,
		task.Priority,
		task.StoryPoints,
		task.OriginalEstimate,
		task.TimeSpent,
		task.RemainingEstimate,
		task.DueDate,
		task.AssigneeID,
		task.ReporterID,
		task.ParentID,
		task.SprintID,
		task.CreatedAt,
	)

	created, err := scanTask(row)
	if err != nil {
		return nil, app_errors.MapPgxError(err, "task.key_taken")
	}
	return created, nil
}

func (r *TaskRepo) FindTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 LIMIT 1`

	task, err := scanTask(r.db.QueryRow(ctx, query, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("task.not_found")
		}
		return nil, app_errors.Internal(err)
	}
	return task, nil
}

func (r *TaskRepo) FindTaskDetail(ctx context.Context, taskID string) (*entity.TaskDetail, *app_errors.AppError) {
	task, appErr := r.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	detail := entity.TaskDetail{TaskEntity: *task}

	reporterQuery := `SELECT id, name, email FROM users WHERE id = $1`
	if err := r.db.QueryRow(ctx, reporterQuery, task.ReporterID).Scan(
		&detail.Reporter.ID, &detail.Reporter.Name, &detail.Reporter.Email,
	); err != nil {
		return nil, app_errors.Internal(err)
	}

	if task.AssigneeID != nil {
		var assignee entity.UserRef
		if err := r.db.QueryRow(ctx, reporterQuery, *task.AssigneeID).Scan(
			&assignee.ID, &assignee.Name, &assignee.Email,
		); err != nil {
			return nil, app_errors.Internal(err)
		}
		detail.Assignee = &assignee
	}

	labelQuery := `
		SELECT l.id, l.project_id, l.name, l.color, l.created_at
		FROM task_labels tl
		JOIN labels l ON l.id = tl.label_id
		WHERE tl.task_id = $1
		ORDER BY l.name`
	rows, err := r.db.Query(ctx, labelQuery, taskID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	detail.Labels = []entity.LabelEntity{}
	for rows.Next() {
		var l entity.LabelEntity
		if err := rows.Scan(&l.ID, &l.ProjectID, &l.Name, &l.Color, &l.CreatedAt); err != nil {
			return nil, app_errors.Internal(err)
		}
		detail.Labels = append(detail.Labels, l)
	}
	rows.Close()

	watcherQuery := `
		SELECT u.id, u.name, u.email
		FROM task_watchers tw
		JOIN users u ON u.id = tw.user_id
		WHERE tw.task_id = $1`
	wRows, err := r.db.Query(ctx, watcherQuery, taskID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer wRows.Close()

	for wRows.Next() {
		var w entity.UserRef
		if err := wRows.Scan(&w.ID, &w.Name, &w.Email); err != nil {
			return nil, app_errors.Internal(err)
		}
		detail.Watchers = append(detail.Watchers, w)
	}

	return &detail, nil
}

func (r *TaskRepo) ListTasksByProject(ctx context.Context, projectID string, filter entity.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError) {
	conditions := []string{"project_id = $1"}
	args := []any{projectID}
	argPos := 2

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}
	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("type = $%d", argPos))
		args = append(args, *filter.Type)
		argPos++
	}
	if filter.Priority != nil {
		conditions = append(conditions, fmt.Sprintf("priority = $%d", argPos))
		args = append(args, *filter.Priority)
		argPos++
	}
	if filter.AssigneeID != nil {
		conditions = append(conditions, fmt.Sprintf("assignee_id = $%d", argPos))
		args = append(args, *filter.AssigneeID)
		argPos++
	}
	if filter.SprintID != nil {
		conditions = append(conditions, fmt.Sprintf("sprint_id = $%d", argPos))
		args = append(args, *filter.SprintID)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks WHERE ` + strings.Join(conditions, " AND ") + ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	tasks := []entity.TaskEntity{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *TaskRepo) UpdateTask(ctx context.Context, t tx.Tx, taskID string, model entity.TaskUpdate) (*entity.TaskEntity, *app_errors.AppError) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	argPos := 1

	set := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if model.Title != nil {
		set("title", *model.Title)
	}
	if model.Description != nil {
		set("description", *model.Description)
	}
	if model.Type != nil {
		set("type", *model.Type)
	}
	if model.Status != nil {
		set("status", *model.Status)
	}
	if model.Priority != nil {
		set("priority", *model.Priority)
	}
	if model.StoryPoints != nil {
		set("story_points", *model.StoryPoints)
	}
	if model.OriginalEstimate != nil {
		set("original_estimate", *model.OriginalEstimate)
		setClauses = append(setClauses, "remaining_estimate = GREATEST(0, $"+fmt.Sprint(argPos)+" - time_spent)")
		args = append(args, *model.OriginalEstimate)
		argPos++
	}
	if model.ClearDueDate {
		setClauses = append(setClauses, "due_date = NULL")
	} else if model.DueDate != nil {
		set("due_date", *model.DueDate)
	}
	if model.ClearAssignee {
		setClauses = append(setClauses, "assignee_id = NULL")
	} else if model.AssigneeID != nil {
		set("assignee_id", *model.AssigneeID)
	}
	if model.ClearParent {
		setClauses = append(setClauses, "parent_id = NULL")
	} else if model.ParentID != nil {
		set("parent_id", *model.ParentID)
	}

	if len(setClauses) == 0 {
		return nil, app_errors.BadRequest("request.no_fields_to_update")
	}

	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf(`
		UPDATE tasks
		SET %s
		WHERE id = $%d
		RETURNING `+taskColumns, strings.Join(setClauses, ", "), argPos)

	args = append(args, taskID)

	task, err := scanTask(tx.Unwrap(t).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.NotFound("task.not_found")
		}
		return nil, app_errors.MapPgxError(err)
	}
	return task, nil
}

func (r *TaskRepo) DeleteTask(ctx context.Context, t tx.Tx, taskID string) *app_errors.AppError {
	tag, err := tx.Unwrap(t).Exec(ctx, `DELETE FROM tasks WHERE id = $1`, taskID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("task.not_found")
	}
	return nil
}

// SetLabels ersetzt die Label-Zuordnung vollständig.
func (r *TaskRepo) SetLabels(ctx context.Context, t tx.Tx, taskID string, labelIDs []string) *app_errors.AppError {
	pgxTx := tx.Unwrap(t)

	if _, err := pgxTx.Exec(ctx, `DELETE FROM task_labels WHERE task_id = $1`, taskID); err != nil {
		return app_errors.Internal(err)
	}

	for _, labelID := range labelIDs {
		query := `INSERT INTO task_labels (task_id, label_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
		if _, err := pgxTx.Exec(ctx, query, taskID, labelID); err != nil {
			return app_errors.MapPgxError(err)
		}
	}
	return nil
}

func (r *TaskRepo) AddWatcher(ctx context.Context, taskID, userID string) *app_errors.AppError {
	query := `INSERT INTO task_watchers (task_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := r.db.Exec(ctx, query, taskID, userID); err != nil {
		return app_errors.MapPgxError(err)
	}
	return nil
}

func (r *TaskRepo) RemoveWatcher(ctx context.Context, taskID, userID string) *app_errors.AppError {
	if _, err := r.db.Exec(ctx, `DELETE FROM task_watchers WHERE task_id = $1 AND user_id = $2`, taskID, userID); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *TaskRepo) ListWatcherIDs(ctx context.Context, taskID string) ([]string, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, `SELECT user_id FROM task_watchers WHERE task_id = $1`, taskID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, app_errors.Internal(err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *TaskRepo) ListBacklog(ctx context.Context, projectID string) ([]entity.TaskEntity, *app_errors.AppError) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 AND sprint_id IS NULL ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	tasks := []entity.TaskEntity{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *TaskRepo) ListBySprint(ctx context.Context, sprintID string) ([]entity.TaskEntity, *app_errors.AppError) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE sprint_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, sprintID)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	tasks := []entity.TaskEntity{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

// AssignTasksToSprint schreibt die Sprint-Referenz nur auf Aufgaben des
// eigenen Projekts; fremde IDs werden stillschweigend ignoriert.
func (r *TaskRepo) AssignTasksToSprint(ctx context.Context, t tx.Tx, projectID, sprintID string, taskIDs []string) *app_errors.AppError {
	query := `UPDATE tasks SET sprint_id = $1, updated_at = now() WHERE project_id = $2 AND id = ANY($3)`

	if _, err := tx.Unwrap(t).Exec(ctx, query, sprintID, projectID, taskIDs); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *TaskRepo) RemoveTasksFromSprint(ctx context.Context, t tx.Tx, sprintID string, taskIDs []string) *app_errors.AppError {
	query := `UPDATE tasks SET sprint_id = NULL, updated_at = now() WHERE sprint_id = $1 AND id = ANY($2)`

	if _, err := tx.Unwrap(t).Exec(ctx, query, sprintID, taskIDs); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *TaskRepo) ClearSprint(ctx context.Context, t tx.Tx, sprintID string, onlyIncomplete bool) *app_errors.AppError {
	query := `
		UPDATE tasks
		SET sprint_id = NULL, updated_at = now()
		WHERE sprint_id = $1 AND (NOT $2 OR status <> 'done')`

	if _, err := tx.Unwrap(t).Exec(ctx, query, sprintID, onlyIncomplete); err != nil {
		return app_errors.Internal(err)
	}
	return nil
}

func (r *TaskRepo) SumDonePoints(ctx context.Context, t tx.Tx, sprintID string) (int, *app_errors.AppError) {
	query := `SELECT COALESCE(SUM(story_points), 0) FROM tasks WHERE sprint_id = $1 AND status = 'done'`

	var sum int
	if err := tx.Unwrap(t).QueryRow(ctx, query, sprintID).Scan(&sum); err != nil {
		return 0, app_errors.Internal(err)
	}
	return sum, nil
}

func (r *TaskRepo) UpdateTimeAggregates(ctx context.Context, t tx.Tx, taskID string, timeSpent, remaining int) *app_errors.AppError {
	query := `UPDATE tasks SET time_spent = $1, remaining_estimate = $2, updated_at = now() WHERE id = $3`

	tag, err := tx.Unwrap(t).Exec(ctx, query, timeSpent, remaining, taskID)
	if err != nil {
		return app_errors.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return app_errors.NotFound("task.not_found")
	}
	return nil
}

func (r *TaskRepo) SearchTasks(ctx context.Context, query string, userID string, isAdmin bool, limit int) ([]entity.TaskEntity, *app_errors.AppError) {
	sql := `
		SELECT ` + taskColumns + `
		FROM tasks t
		WHERE (t.title ILIKE '%' || $1 || '%' OR t.description ILIKE '%' || $1 || '%' OR t.task_key ILIKE '%' || $1 || '%')
			AND ($2 OR EXISTS (
				SELECT 1 FROM projects p
				LEFT JOIN project_members pm ON pm.project_id = p.id AND pm.user_id = $3
				WHERE p.id = t.project_id AND (p.owner_id = $3 OR pm.user_id IS NOT NULL)
			))
		ORDER BY t.created_at DESC
		LIMIT $4`

	rows, err := r.db.Query(ctx, sql, query, isAdmin, userID, limit)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	tasks := []entity.TaskEntity{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, app_errors.Internal(err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (r *TaskRepo) ListDueSoon(ctx context.Context, within time.Duration) ([]entity.DueSoonTask, *app_errors.AppError) {
	query := `
		SELECT t.id, t.task_key, t.title, t.status, t.priority, t.due_date,
			p.id, p.name, u.id, u.name, u.email
		FROM tasks t
		JOIN projects p ON p.id = t.project_id
		JOIN users u ON u.id = t.assignee_id
		WHERE t.status <> 'done'
			AND t.due_date IS NOT NULL
			AND t.due_date BETWEEN now() AND now() + $1
			AND u.is_active`

	rows, err := r.db.Query(ctx, query, within)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	defer rows.Close()

	tasks := []entity.DueSoonTask{}
	for rows.Next() {
		var d entity.DueSoonTask
		if err := rows.Scan(
			&d.TaskID, &d.TaskKey, &d.Title, &d.Status, &d.Priority, &d.DueDate,
			&d.ProjectID, &d.ProjectName, &d.AssigneeID, &d.AssigneeName, &d.EmailAssignee,
		); err != nil {
			return nil, app_errors.Internal(err)
		}
		tasks = append(tasks, d)
	}
	return tasks, nil
}
