package team_case

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/authz"
	team_dto "github.com/DevITJAX/FlowOps/internal/dtos/team-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type TeamServiceContract interface {
	CreateTeam(ctx context.Context, actor authz.Actor, projectID string, req *team_dto.CreateTeamRequest) (*entity.TeamEntity, *app_errors.AppError)
	ListTeams(ctx context.Context, actor authz.Actor, projectID string) ([]entity.TeamDetail, *app_errors.AppError)
	GetTeam(ctx context.Context, actor authz.Actor, teamID string) (*entity.TeamDetail, *app_errors.AppError)
	UpdateTeam(ctx context.Context, actor authz.Actor, teamID string, req *team_dto.UpdateTeamRequest) (*entity.TeamEntity, *app_errors.AppError)
	DeleteTeam(ctx context.Context, actor authz.Actor, teamID string) *app_errors.AppError

	AddMember(ctx context.Context, actor authz.Actor, teamID string, req *team_dto.AddTeamMemberRequest) *app_errors.AppError
	UpdateMemberRole(ctx context.Context, actor authz.Actor, teamID, userID string, req *team_dto.UpdateTeamMemberRoleRequest) *app_errors.AppError
	RemoveMember(ctx context.Context, actor authz.Actor, teamID, userID string) *app_errors.AppError
	ListAvailableUsers(ctx context.Context, actor authz.Actor, teamID string) ([]entity.UserRef, *app_errors.AppError)
}
