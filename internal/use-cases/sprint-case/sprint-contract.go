package sprint_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	sprint_dto "github.com/DevITJAX/FlowOps/internal/dtos/sprint-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type SprintServiceContract interface {
	CreateSprint(ctx context.Context, actor authz.Actor, projectID string, req *sprint_dto.CreateSprintRequest) (*entity.SprintEntity, *app_errors.AppError)
	ListSprints(ctx context.Context, actor authz.Actor, projectID string) ([]entity.SprintEntity, *app_errors.AppError)
	GetSprint(ctx context.Context, actor authz.Actor, sprintID string) (*sprint_dto.SprintDetailResponse, *app_errors.AppError)
	UpdateSprint(ctx context.Context, actor authz.Actor, sprintID string, req *sprint_dto.UpdateSprintRequest) (*entity.SprintEntity, *app_errors.AppError)
	DeleteSprint(ctx context.Context, actor authz.Actor, sprintID string) *app_errors.AppError

	StartSprint(ctx context.Context, actor authz.Actor, sprintID string) (*entity.SprintEntity, *app_errors.AppError)
	CompleteSprint(ctx context.Context, actor authz.Actor, sprintID string, req *sprint_dto.CompleteSprintRequest) (*entity.SprintEntity, *app_errors.AppError)

	AddTasks(ctx context.Context, actor authz.Actor, sprintID string, req *sprint_dto.SprintTasksRequest) *app_errors.AppError
	RemoveTasks(ctx context.Context, actor authz.Actor, sprintID string, req *sprint_dto.SprintTasksRequest) *app_errors.AppError

	GetBacklog(ctx context.Context, actor authz.Actor, projectID string) (*sprint_dto.BacklogResponse, *app_errors.AppError)
	GetVelocity(ctx context.Context, actor authz.Actor, projectID string) (*sprint_dto.VelocityResponse, *app_errors.AppError)
}
