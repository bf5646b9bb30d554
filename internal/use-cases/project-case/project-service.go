package project_case

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DevITJAX/FlowOps/internal/abstraction/tx"
	"github.com/DevITJAX/FlowOps/internal/authz"
	project_dto "github.com/DevITJAX/FlowOps/internal/dtos/project-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	activity_repo "github.com/DevITJAX/FlowOps/internal/repo/activity-repo"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	user_repo "github.com/DevITJAX/FlowOps/internal/repo/user-repo"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

type ProjectService struct {
	repo  project_repo.ProjectRepoContract
	users user_repo.UserRepoContract
	ar    activity_repo.ActivityRepoContract
	txm   tx.TxManager
}

func NewProjectService(db *pgxpool.Pool) ProjectServiceContract {
	return &ProjectService{
		repo:  project_repo.NewProjectRepo(db),
		users: user_repo.NewUserRepo(db),
		ar:    activity_repo.NewActivityRepo(db),
		txm:   tx.NewPgxTxManager(db),
	}
}

// authorize lädt die Mitgliederliste und wertet die Regel-Tabelle aus.
func (s *ProjectService) authorize(ctx context.Context, actor authz.Actor, project *entity.ProjectEntity, op authz.Operation) *app_errors.AppError {
	memberIDs, appErr := s.repo.ListMemberIDs(ctx, project.ID)
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

func (s *ProjectService) logActivity(ctx context.Context, userID, action, targetID string, details map[string]any) {
	id, err := uuid.NewV7()
	if err != nil {
		return
	}
	if appErr := s.ar.CreateActivity(ctx, &entity.ActivityEntity{
		ID:         id.String(),
		UserID:     userID,
		Action:     action,
		TargetType: "project",
		TargetID:   targetID,
		Details:    details,
		CreatedAt:  time.Now(),
	}); appErr != nil {
		log.Warn().Err(appErr.Err).Str("action", action).Msg("Aktivität konnte nicht protokolliert werden")
	}
}

// generateKey leitet den Schlüssel aus dem Namen ab und hängt bei Kollision
// eine laufende Nummer an.
func (s *ProjectService) generateKey(ctx context.Context, name string) (string, *app_errors.AppError) {
	base := utils.ProjectKeyFromName(name)

	key := base
	for suffix := 1; ; suffix++ {
		exists, appErr := s.repo.ExistsKey(ctx, key)
		if appErr != nil {
			return "", appErr
		}
		if !exists {
			return key, nil
		}
		key = fmt.Sprintf("%s%d", base, suffix)
	}
}

func (s *ProjectService) CreateProject(ctx context.Context, actor authz.Actor, req *project_dto.CreateProjectRequest) (*entity.ProjectEntity, *app_errors.AppError) {
	key := ""
	if req.Key != nil {
		key = strings.ToUpper(*req.Key)
	} else {
		generated, appErr := s.generateKey(ctx, req.Name)
		if appErr != nil {
			return nil, appErr
		}
		key = generated
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	status := entity.ProjectPlanned
	if req.Status != nil {
		status = entity.ProjectStatus(*req.Status)
	}

	projectID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
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

	project, appErr := s.repo.CreateProject(ctx, t, &entity.ProjectEntity{
		ID:          projectID.String(),
		Name:        req.Name,
		Key:         key,
		Description: description,
		Status:      status,
		OwnerID:     actor.ID,
		CreatedAt:   time.Now(),
	})
	if appErr != nil {
		return nil, appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	s.logActivity(ctx, actor.ID, "project_created", project.ID, map[string]any{"name": project.Name, "key": project.Key})

	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, actor authz.Actor) ([]entity.ProjectDetail, *app_errors.AppError) {
	return s.repo.ListProjectsForUser(ctx, actor.ID, actor.Role == entity.RoleAdmin)
}

func (s *ProjectService) GetProject(ctx context.Context, actor authz.Actor, projectID string) (*entity.ProjectDetail, *app_errors.AppError) {
	detail, appErr := s.repo.FindProjectDetail(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorize(ctx, actor, &detail.ProjectEntity, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	return detail, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, actor authz.Actor, projectID string, req *project_dto.UpdateProjectRequest) (*entity.ProjectEntity, *app_errors.AppError) {
	project, appErr := s.repo.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorize(ctx, actor, project, authz.ProjectUpdate); appErr != nil {
		return nil, appErr
	}

	var status *entity.ProjectStatus
	if req.Status != nil {
		st := entity.ProjectStatus(*req.Status)
		status = &st
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

	updated, appErr := s.repo.UpdateProject(ctx, t, projectID, entity.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		Status:      status,
	})
	if appErr != nil {
		return nil, appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return nil, appErr
	}
	committed = true

	s.logActivity(ctx, actor.ID, "project_updated", projectID, nil)

	return updated, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, actor authz.Actor, projectID string) *app_errors.AppError {
	project, appErr := s.repo.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return appErr
	}

	if appErr := s.authorize(ctx, actor, project, authz.ProjectDelete); appErr != nil {
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

	// Abhängige Datensätze (Tasks, Sprints, Teams, Labels) räumt die
	// Datenbank über ON DELETE CASCADE mit ab.
	if appErr := s.repo.DeleteProject(ctx, t, projectID); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	s.logActivity(ctx, actor.ID, "project_deleted", projectID, map[string]any{"name": project.Name})

	return nil
}

func (s *ProjectService) ListMembers(ctx context.Context, actor authz.Actor, projectID string) ([]entity.UserRef, *app_errors.AppError) {
	project, appErr := s.repo.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorize(ctx, actor, project, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	return s.repo.ListMembers(ctx, projectID)
}

func (s *ProjectService) AddMember(ctx context.Context, actor authz.Actor, projectID string, req *project_dto.AddMemberRequest) *app_errors.AppError {
	project, appErr := s.repo.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return appErr
	}

	if appErr := s.authorize(ctx, actor, project, authz.ProjectManageMembers); appErr != nil {
		return appErr
	}

	user, appErr := s.users.FindByID(ctx, req.UserID)
	if appErr != nil {
		return appErr
	}
	if !user.IsActive {
		return app_errors.BadRequest("user.inactive")
	}

	// Der Owner ist implizit Teil des Projekts und wird nie Mitglied.
	if user.ID == project.OwnerID {
		return app_errors.BadRequest("project.owner_is_implicit_member")
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

	if appErr := s.repo.AddMember(ctx, t, projectID, req.UserID); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	s.logActivity(ctx, actor.ID, "member_added", projectID, map[string]any{"user_id": req.UserID})

	return nil
}

// RemoveMember entfernt das Mitglied samt aller Team-Mitgliedschaften im
// Projekt in einer Transaktion. Führt das Mitglied dort noch ein Team,
// schlägt die Operation mit Conflict fehl.
func (s *ProjectService) RemoveMember(ctx context.Context, actor authz.Actor, projectID, userID string) *app_errors.AppError {
	project, appErr := s.repo.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return appErr
	}

	if appErr := s.authorize(ctx, actor, project, authz.ProjectManageMembers); appErr != nil {
		return appErr
	}

	// Der Owner kann niemals entfernt werden, egal von wem.
	if userID == project.OwnerID {
		return app_errors.BadRequest("project.cannot_remove_owner")
	}

	leads, appErr := s.repo.UserLeadsAnyTeam(ctx, projectID, userID)
	if appErr != nil {
		return appErr
	}
	if leads {
		return app_errors.Conflict("project.member_leads_team")
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

	if appErr := s.repo.RemoveUserFromProjectTeams(ctx, t, projectID, userID); appErr != nil {
		return appErr
	}

	if appErr := s.repo.RemoveMember(ctx, t, projectID, userID); appErr != nil {
		return appErr
	}

	if appErr := t.Commit(ctx); appErr != nil {
		return appErr
	}
	committed = true

	s.logActivity(ctx, actor.ID, "member_removed", projectID, map[string]any{"user_id": userID})

	return nil
}

func (s *ProjectService) ListAvailableUsers(ctx context.Context, actor authz.Actor, projectID string) ([]entity.UserRef, *app_errors.AppError) {
	project, appErr := s.repo.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorize(ctx, actor, project, authz.ProjectManageMembers); appErr != nil {
		return nil, appErr
	}

	return s.repo.ListAvailableUsers(ctx, projectID)
}
