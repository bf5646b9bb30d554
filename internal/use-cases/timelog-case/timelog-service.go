package timelog_case

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	timelog_dto "github.com/DevITJAX/FlowOps/internal/dtos/timelog-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	task_repo "github.com/DevITJAX/FlowOps/internal/repo/task-repo"
	timelog_repo "github.com/DevITJAX/FlowOps/internal/repo/timelog-repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TimeLogService struct {
	repo     timelog_repo.TimeLogRepoContract
	tasks    task_repo.TaskRepoContract
	projects project_repo.ProjectRepoContract
	txm      tx.TxManager
}

func NewTimeLogService(db *pgxpool.Pool) TimeLogServiceContract {
	return &TimeLogService{
		repo:     timelog_repo.NewTimeLogRepo(db),
		tasks:    task_repo.NewTaskRepo(db),
		projects: project_repo.NewProjectRepo(db),
		txm:      tx.NewPgxTxManager(db),
	}
}

func (s *TimeLogService) authorizeTask(ctx context.Context, actor authz.Actor, task *entity.TaskEntity, op authz.Operation) *app_errors.AppError {
	project, appErr := s.projects.FindProjectByID(ctx, task.ProjectID)
	if appErr != nil {
		return appErr
	}

	memberIDs, appErr := s.projects.ListMemberIDs(ctx, task.ProjectID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, op, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return app_errors.Forbidden("forbidden")
	}
	return nil
}

// recompute setzt die Zeit-Aggregate der Aufgabe innerhalb der laufenden
// Transaktion neu: timeSpent als Summe aller Logs, remaining geklemmt auf 0.
func (s *TimeLogService) recompute(ctx context.Context, t tx.Tx, task *entity.TaskEntity) *app_errors.AppError {
	spent, appErr := s.repo.SumForTask(ctx, t, task.ID)
	if appErr != nil {
		return appErr
	}

	remaining := task.OriginalEstimate - spent
	if remaining < 0 {
		remaining = 0
	}

	return s.tasks.UpdateTimeAggregates(ctx, t, task.ID, spent, remaining)
}

func (s *TimeLogService) CreateTimeLog(ctx context.Context, actor authz.Actor, taskID string, req *timelog_dto.CreateTimeLogRequest) (*entity.TimeLogEntity, *app_errors.AppError) {
	task, appErr := s.tasks.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorizeTask(ctx, actor, task, authz.TaskCreate); appErr != nil {
		return nil, appErr
	}

	timeLogID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	loggedAt := time.Now()
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return nil, appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	timeLog, appErr := s.repo.CreateTimeLog(ctx, t, &entity.TimeLogEntity{
		ID:          timeLogID.String(),
		TaskID:      taskID,
		UserID:      actor.ID,
		TimeSpent:   req.TimeSpent,
		Description: req.Description,
		LoggedAt:    loggedAt,
		CreatedAt:   time.Now(),
	})
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.recompute(ctx, t, task); appErr != nil {
		return nil, appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	return timeLog, nil
}

func (s *TimeLogService) ListTimeLogs(ctx context.Context, actor authz.Actor, taskID string) ([]entity.TimeLogDetail, *app_errors.AppError) {
	task, appErr := s.tasks.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorizeTask(ctx, actor, task, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	return s.repo.ListTimeLogsByTask(ctx, taskID)
}

func (s *TimeLogService) UpdateTimeLog(ctx context.Context, actor authz.Actor, timeLogID string, req *timelog_dto.UpdateTimeLogRequest) (*entity.TimeLogEntity, *app_errors.AppError) {
	timeLog, appErr := s.repo.FindTimeLogByID(ctx, timeLogID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.TimeLogModify, authz.Target{
		RecordOwnerID: timeLog.UserID,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	task, appErr := s.tasks.FindTaskByID(ctx, timeLog.TaskID)
	if appErr != nil {
		return nil, appErr
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return nil, appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	updated, appErr := s.repo.UpdateTimeLog(ctx, t, timeLogID, req.TimeSpent, req.Description, req.LoggedAt)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.recompute(ctx, t, task); appErr != nil {
		return nil, appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	return updated, nil
}

func (s *TimeLogService) DeleteTimeLog(ctx context.Context, actor authz.Actor, timeLogID string) *app_errors.AppError {
	timeLog, appErr := s.repo.FindTimeLogByID(ctx, timeLogID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.TimeLogModify, authz.Target{
		RecordOwnerID: timeLog.UserID,
	}) {
		return app_errors.Forbidden("forbidden")
	}

	task, appErr := s.tasks.FindTaskByID(ctx, timeLog.TaskID)
	if appErr != nil {
		return appErr
	}

	t, appErr := s.txm.Begin(ctx)
	if appErr != nil {
		return appErr
	}
	committed := false
	defer func() {
		if !committed {
			_ = t.Rollback(ctx)
		}
	}()

	if appErr := s.repo.DeleteTimeLog(ctx, t, timeLogID); appErr != nil {
		return appErr
	}

	if appErr := s.recompute(ctx, t, task); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	return nil
}
