package task_repo

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type TaskRepoContract interface {
	// NextTaskSeq liefert die nächste Laufnummer des Projekts atomar.
	NextTaskSeq(ctx context.Context, t tx.Tx, projectID string) (int, *app_errors.AppError)
	CreateTask(ctx context.Context, t tx.Tx, task *entity.TaskEntity) (*entity.TaskEntity, *app_errors.AppError)
	FindTaskByID(ctx context.Context, taskID string) (*entity.TaskEntity, *app_errors.AppError)
	FindTaskDetail(ctx context.Context, taskID string) (*entity.TaskDetail, *app_errors.AppError)
	ListTasksByProject(ctx context.Context, projectID string, filter entity.TaskListFilter) ([]entity.TaskEntity, *app_errors.AppError)
	UpdateTask(ctx context.Context, t tx.Tx, taskID string, model entity.TaskUpdate) (*entity.TaskEntity, *app_errors.AppError)
	DeleteTask(ctx context.Context, t tx.Tx, taskID string) *app_errors.AppError

	SetLabels(ctx context.Context, t tx.Tx, taskID string, labelIDs []string) *app_errors.AppError
	AddWatcher(ctx context.Context, taskID, userID string) *app_errors.AppError
	RemoveWatcher(ctx context.Context, taskID, userID string) *app_errors.AppError
	ListWatcherIDs(ctx context.Context, taskID string) ([]string, *app_errors.AppError)

	ListBacklog(ctx context.Context, projectID string) ([]entity.TaskEntity, *app_errors.AppError)
	ListBySprint(ctx context.Context, sprintID string) ([]entity.TaskEntity, *app_errors.AppError)
	AssignTasksToSprint(ctx context.Context, t tx.Tx, projectID, sprintID string, taskIDs []string) *app_errors.AppError
	RemoveTasksFromSprint(ctx context.Context, t tx.Tx, sprintID string, taskIDs []string) *app_errors.AppError
	// ClearSprint löst Aufgaben vom Sprint; onlyIncomplete beschränkt auf status <> done.
	ClearSprint(ctx context.Context, t tx.Tx, sprintID string, onlyIncomplete bool) *app_errors.AppError
	SumDonePoints(ctx context.Context, t tx.Tx, sprintID string) (int, *app_errors.AppError)

	UpdateTimeAggregates(ctx context.Context, t tx.Tx, taskID string, timeSpent, remaining int) *app_errors.AppError

	SearchTasks(ctx context.Context, query string, userID string, isAdmin bool, limit int) ([]entity.TaskEntity, *app_errors.AppError)
	ListDueSoon(ctx context.Context, within time.Duration) ([]entity.DueSoonTask, *app_errors.AppError)
}
