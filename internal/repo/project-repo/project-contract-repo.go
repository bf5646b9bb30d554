package project_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type ProjectRepoContract interface {
	CreateProject(ctx context.Context, t tx.Tx, project *entity.ProjectEntity) (*entity.ProjectEntity, *app_errors.AppError)
	FindProjectByID(ctx context.Context, projectID string) (*entity.ProjectEntity, *app_errors.AppError)
	FindProjectDetail(ctx context.Context, projectID string) (*entity.ProjectDetail, *app_errors.AppError)
	ListProjectsForUser(ctx context.Context, userID string, isAdmin bool) ([]entity.ProjectDetail, *app_errors.AppError)
	UpdateProject(ctx context.Context, t tx.Tx, projectID string, model entity.ProjectUpdate) (*entity.ProjectEntity, *app_errors.AppError)
	DeleteProject(ctx context.Context, t tx.Tx, projectID string) *app_errors.AppError
	ExistsKey(ctx context.Context, key string) (bool, *app_errors.AppError)

	ListMemberIDs(ctx context.Context, projectID string) ([]string, *app_errors.AppError)
	ListMembers(ctx context.Context, projectID string) ([]entity.UserRef, *app_errors.AppError)
	AddMember(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError
	RemoveMember(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError
	ListAvailableUsers(ctx context.Context, projectID string) ([]entity.UserRef, *app_errors.AppError)

	UserLeadsAnyTeam(ctx context.Context, projectID, userID string) (bool, *app_errors.AppError)
	RemoveUserFromProjectTeams(ctx context.Context, t tx.Tx, projectID, userID string) *app_errors.AppError

	SearchProjects(ctx context.Context, query string, userID string, isAdmin bool, limit int) ([]entity.ProjectEntity, *app_errors.AppError)
}
