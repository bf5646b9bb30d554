package task_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	task_dto "github.com/DevITJAX/FlowOps/internal/dtos/task-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type TaskServiceContract interface {
	CreateTask(ctx context.Context, actor authz.Actor, projectID string, req *task_dto.CreateTaskRequest) (*entity.TaskEntity, *app_errors.AppError)
	ListTasks(ctx context.Context, actor authz.Actor, projectID string, query *task_dto.TaskListQuery) ([]entity.TaskEntity, *app_errors.AppError)
	GetTask(ctx context.Context, actor authz.Actor, taskID string) (*entity.TaskDetail, *app_errors.AppError)
	UpdateTask(ctx context.Context, actor authz.Actor, taskID string, req *task_dto.UpdateTaskRequest) (*entity.TaskEntity, *app_errors.AppError)
	DeleteTask(ctx context.Context, actor authz.Actor, taskID string) *app_errors.AppError

	WatchTask(ctx context.Context, actor authz.Actor, taskID string) *app_errors.AppError
	UnwatchTask(ctx context.Context, actor authz.Actor, taskID string) *app_errors.AppError
}
