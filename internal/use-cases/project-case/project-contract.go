package project_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	project_dto "github.com/DevITJAX/FlowOps/internal/dtos/project-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type ProjectServiceContract interface {
	CreateProject(ctx context.Context, actor authz.Actor, req *project_dto.CreateProjectRequest) (*entity.ProjectEntity, *app_errors.AppError)
	ListProjects(ctx context.Context, actor authz.Actor) ([]entity.ProjectDetail, *app_errors.AppError)
	GetProject(ctx context.Context, actor authz.Actor, projectID string) (*entity.ProjectDetail, *app_errors.AppError)
	UpdateProject(ctx context.Context, actor authz.Actor, projectID string, req *project_dto.UpdateProjectRequest) (*entity.ProjectEntity, *app_errors.AppError)
	DeleteProject(ctx context.Context, actor authz.Actor, projectID string) *app_errors.AppError

	ListMembers(ctx context.Context, actor authz.Actor, projectID string) ([]entity.UserRef, *app_errors.AppError)
	AddMember(ctx context.Context, actor authz.Actor, projectID string, req *project_dto.AddMemberRequest) *app_errors.AppError
	RemoveMember(ctx context.Context, actor authz.Actor, projectID, userID string) *app_errors.AppError
	ListAvailableUsers(ctx context.Context, actor authz.Actor, projectID string) ([]entity.UserRef, *app_errors.AppError)
}
