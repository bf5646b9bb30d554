package team_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type TeamRepoContract interface {
	CreateTeam(ctx context.Context, team *entity.TeamEntity) (*entity.TeamEntity, *app_errors.AppError)
	FindTeamByID(ctx context.Context, teamID string) (*entity.TeamEntity, *app_errors.AppError)
	FindTeamDetail(ctx context.Context, teamID string) (*entity.TeamDetail, *app_errors.AppError)
	ListTeamsByProject(ctx context.Context, projectID string) ([]entity.TeamDetail, *app_errors.AppError)
	UpdateTeam(ctx context.Context, teamID string, model entity.TeamUpdate) (*entity.TeamEntity, *app_errors.AppError)
	DeleteTeam(ctx context.Context, t tx.Tx, teamID string) *app_errors.AppError

	AddTeamMember(ctx context.Context, t tx.Tx, teamID, userID string, role entity.TeamRole) *app_errors.AppError
	UpdateTeamMemberRole(ctx context.Context, teamID, userID string, role entity.TeamRole) *app_errors.AppError
	RemoveTeamMember(ctx context.Context, t tx.Tx, teamID, userID string) *app_errors.AppError
	IsTeamMember(ctx context.Context, teamID, userID string) (bool, *app_errors.AppError)

	// ListAvailableUsers liefert Owner und Mitglieder des Projekts, die noch
	// nicht im Team sind (nur aktive Benutzer).
	ListAvailableUsers(ctx context.Context, teamID string) ([]entity.UserRef, *app_errors.AppError)
}
