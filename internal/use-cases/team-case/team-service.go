package team_case

import (
	"context"
	"slices"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	team_dto "github.com/DevITJAX/FlowOps/internal/dtos/team-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	activity_repo "github.com/DevITJAX/FlowOps/internal/repo/activity-repo"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	team_repo "github.com/DevITJAX/FlowOps/internal/repo/team-repo"
	user_repo "github.com/DevITJAX/FlowOps/internal/repo/user-repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const defaultTeamColor = "#6366f1"

type TeamService struct {
	repo     team_repo.TeamRepoContract
	projects project_repo.ProjectRepoContract
	users    user_repo.UserRepoContract
	ar       activity_repo.ActivityRepoContract
	txm      tx.TxManager
}

func NewTeamService(db *pgxpool.Pool) TeamServiceContract {
	return &TeamService{
		repo:     team_repo.NewTeamRepo(db),
		projects: project_repo.NewProjectRepo(db),
		users:    user_repo.NewUserRepo(db),
		ar:       activity_repo.NewActivityRepo(db),
		txm:      tx.NewPgxTxManager(db),
	}
}

func (s *TeamService) projectScope(ctx context.Context, projectID string) (*entity.ProjectEntity, []string, *app_errors.AppError) {
	project, appErr := s.projects.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return nil, nil, appErr
	}

	memberIDs, appErr := s.projects.ListMemberIDs(ctx, projectID)
	if appErr != nil {
		return nil, nil, appErr
	}

	return project, memberIDs, nil
}

func isParticipant(project *entity.ProjectEntity, memberIDs []string, userID string) bool {
	return userID == project.OwnerID || slices.Contains(memberIDs, userID)
}

func (s *TeamService) logActivity(ctx context.Context, userID, action, teamID string, details map[string]any) {
	id, err := uuid.NewV7()
	if err != nil {
		return
	}
	if appErr := s.ar.CreateActivity(ctx, &entity.ActivityEntity{
		ID:         id.String(),
		UserID:     userID,
		Action:     action,
		TargetType: "team",
		TargetID:   teamID,
		Details:    details,
		CreatedAt:  time.Now(),
	}); appErr != nil {
		log.Warn().Err(appErr.Err).Str("action", action).Msg("Aktivität konnte nicht protokolliert werden")
	}
}

func (s *TeamService) CreateTeam(ctx context.Context, actor authz.Actor, projectID string, req *team_dto.CreateTeamRequest) (*entity.TeamEntity, *app_errors.AppError) {
	project, memberIDs, appErr := s.projectScope(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.TeamCreate, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	if req.LeadID != nil && !isParticipant(project, memberIDs, *req.LeadID) {
		return nil, app_errors.BadRequest("team.lead_not_member")
	}

	teamID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	color := defaultTeamColor
	if req.Color != nil {
		color = *req.Color
	}

	team, appErr := s.repo.CreateTeam(ctx, &entity.TeamEntity{
		ID:          teamID.String(),
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
		LeadID:      req.LeadID,
		IsDefault:   req.IsDefault,
		CreatedBy:   actor.ID,
		CreatedAt:   time.Now(),
	})
	if appErr != nil {
		return nil, appErr
	}

	// Die Teamleitung wird sofort Mitglied ihres eigenen Teams.
	if req.LeadID != nil {
		if appErr := s.addMemberTx(ctx, project, *req.LeadID, entity.TeamLead, team.ID); appErr != nil {
			log.Warn().Str("team_id", team.ID).Msg("Teamleitung konnte nicht als Mitglied eingetragen werden")
		}
	}

	s.logActivity(ctx, actor.ID, "team_created", team.ID, map[string]any{"name": team.Name})

	return team, nil
}

func (s *TeamService) ListTeams(ctx context.Context, actor authz.Actor, projectID string) ([]entity.TeamDetail, *app_errors.AppError) {
	project, memberIDs, appErr := s.projectScope(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.ProjectRead, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	return s.repo.ListTeamsByProject(ctx, projectID)
}

func (s *TeamService) GetTeam(ctx context.Context, actor authz.Actor, teamID string) (*entity.TeamDetail, *app_errors.AppError) {
	detail, appErr := s.repo.FindTeamDetail(ctx, teamID)
	if appErr != nil {
		return nil, appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, detail.ProjectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.ProjectRead, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	return detail, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, actor authz.Actor, teamID string, req *team_dto.UpdateTeamRequest) (*entity.TeamEntity, *app_errors.AppError) {
	team, appErr := s.repo.FindTeamByID(ctx, teamID)
	if appErr != nil {
		return nil, appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, team.ProjectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.TeamUpdate, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
		TeamLeadID:       team.LeadID,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	model := entity.TeamUpdate{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	if req.LeadID != nil {
		if *req.LeadID == "" {
			model.ClearLead = true
		} else {
			if !isParticipant(project, memberIDs, *req.LeadID) {
				return nil, app_errors.BadRequest("team.lead_not_member")
			}
			model.LeadID = req.LeadID
		}
	}

	updated, appErr := s.repo.UpdateTeam(ctx, teamID, model)
	if appErr != nil {
		return nil, appErr
	}

	if model.LeadID != nil {
		if appErr := s.addMemberTx(ctx, project, *model.LeadID, entity.TeamLead, teamID); appErr != nil {
			log.Warn().Str("team_id", teamID).Msg("Teamleitung konnte nicht als Mitglied eingetragen werden")
		}
	}

	return updated, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, actor authz.Actor, teamID string) *app_errors.AppError {
	team, appErr := s.repo.FindTeamByID(ctx, teamID)
	if appErr != nil {
		return appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, team.ProjectID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.TeamDelete, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
	}) {
		return app_errors.Forbidden("forbidden")
	}

	// Das Standard-Team eines Projekts bleibt bestehen.
	if team.IsDefault {
		return app_errors.BadRequest("team.cannot_delete_default")
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

	if appErr := s.repo.DeleteTeam(ctx, t, teamID); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	s.logActivity(ctx, actor.ID, "team_deleted", teamID, map[string]any{"name": team.Name})

	return nil
}

// addMemberTx trägt den Benutzer im Team ein und vereinigt die
// Projektmitgliedschaft in derselben Transaktion. Der Projekt-Owner ist
// implizit beteiligt und wird nicht in die Mitgliederliste aufgenommen.
func (s *TeamService) addMemberTx(ctx context.Context, project *entity.ProjectEntity, userID string, role entity.TeamRole, teamID string) *app_errors.AppError {
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

	if appErr := s.repo.AddTeamMember(ctx, t, teamID, userID, role); appErr != nil {
		return appErr
	}

	if userID != project.OwnerID {
		if appErr := s.projects.AddMember(ctx, t, project.ID, userID); appErr != nil {
			return appErr
		}
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	return nil
}

func (s *TeamService) AddMember(ctx context.Context, actor authz.Actor, teamID string, req *team_dto.AddTeamMemberRequest) *app_errors.AppError {
	team, appErr := s.repo.FindTeamByID(ctx, teamID)
	if appErr != nil {
		return appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, team.ProjectID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.TeamManageMembers, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
		TeamLeadID:       team.LeadID,
	}) {
		return app_errors.Forbidden("forbidden")
	}

	user, appErr := s.users.FindByID(ctx, req.UserID)
	if appErr != nil {
		return appErr
	}
	if !user.IsActive {
		return app_errors.BadRequest("user.inactive")
	}

	role := entity.TeamRoleMember
	if req.Role != nil {
		role = entity.TeamRole(*req.Role)
	}

	if appErr := s.addMemberTx(ctx, project, req.UserID, role, teamID); appErr != nil {
		return appErr
	}

	s.logActivity(ctx, actor.ID, "team_member_added", teamID, map[string]any{"user_id": req.UserID})

	return nil
}

func (s *TeamService) UpdateMemberRole(ctx context.Context, actor authz.Actor, teamID, userID string, req *team_dto.UpdateTeamMemberRoleRequest) *app_errors.AppError {
	team, appErr := s.repo.FindTeamByID(ctx, teamID)
	if appErr != nil {
		return appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, team.ProjectID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.TeamManageMembers, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
		TeamLeadID:       team.LeadID,
	}) {
		return app_errors.Forbidden("forbidden")
	}

	isMember, appErr := s.repo.IsTeamMember(ctx, teamID, userID)
	if appErr != nil {
		return appErr
	}
	if !isMember {
		return app_errors.NotFound("team.member_not_found")
	}

	return s.repo.UpdateTeamMemberRole(ctx, teamID, userID, entity.TeamRole(req.Role))
}

// RemoveMember entfernt den Benutzer aus dem Team; die Projektmitgliedschaft
// bleibt unberührt. Die Teamleitung muss vorher neu besetzt werden.
func (s *TeamService) RemoveMember(ctx context.Context, actor authz.Actor, teamID, userID string) *app_errors.AppError {
	team, appErr := s.repo.FindTeamByID(ctx, teamID)
	if appErr != nil {
		return appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, team.ProjectID)
	if appErr != nil {
		return appErr
	}

	if !authz.Authorize(actor, authz.TeamManageMembers, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
		TeamLeadID:       team.LeadID,
	}) {
		return app_errors.Forbidden("forbidden")
	}

	if team.LeadID != nil && *team.LeadID == userID {
		return app_errors.Conflict("team.cannot_remove_lead")
	}

	isMember, appErr := s.repo.IsTeamMember(ctx, teamID, userID)
	if appErr != nil {
		return appErr
	}
	if !isMember {
		return app_errors.NotFound("team.member_not_found")
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

	if appErr := s.repo.RemoveTeamMember(ctx, t, teamID, userID); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	s.logActivity(ctx, actor.ID, "team_member_removed", teamID, map[string]any{"user_id": userID})

	return nil
}

func (s *TeamService) ListAvailableUsers(ctx context.Context, actor authz.Actor, teamID string) ([]entity.UserRef, *app_errors.AppError) {
	team, appErr := s.repo.FindTeamByID(ctx, teamID)
	if appErr != nil {
		return nil, appErr
	}

	project, memberIDs, appErr := s.projectScope(ctx, team.ProjectID)
	if appErr != nil {
		return nil, appErr
	}

	if !authz.Authorize(actor, authz.TeamManageMembers, authz.Target{
		ProjectOwnerID:   project.OwnerID,
		ProjectMemberIDs: memberIDs,
		TeamLeadID:       team.LeadID,
	}) {
		return nil, app_errors.Forbidden("forbidden")
	}

	return s.repo.ListAvailableUsers(ctx, teamID)
}
