package link_case

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/authz"
	link_dto "github.com/DevITJAX/FlowOps/internal/dtos/link-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	link_repo "github.com/DevITJAX/FlowOps/internal/repo/link-repo"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	task_repo "github.com/DevITJAX/FlowOps/internal/repo/task-repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LinkService struct {
	repo     link_repo.LinkRepoContract
	tasks    task_repo.TaskRepoContract
	projects project_repo.ProjectRepoContract
}

func NewLinkService(db *pgxpool.Pool) LinkServiceContract {
	return &LinkService{
		repo:     link_repo.NewLinkRepo(db),
		tasks:    task_repo.NewTaskRepo(db),
		projects: project_repo.NewProjectRepo(db),
	}
}

func (s *LinkService) authorizeProject(ctx context.Context, actor authz.Actor, projectID string, op authz.Operation) *app_errors.AppError {
	project, appErr := s.projects.FindProjectByID(ctx, projectID)
	if appErr != nil {
		return appErr
	}

	memberIDs, appErr := s.projects.ListMemberIDs(ctx, projectID)
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

// CreateLink legt einen gerichteten Link an. Selbstverweise werden
// abgelehnt, der Akteur braucht Zugriff auf beide Aufgaben, und das Tripel
// (source, target, type) ist eindeutig.
func (s *LinkService) CreateLink(ctx context.Context, actor authz.Actor, sourceTaskID string, req *link_dto.CreateLinkRequest) (*entity.IssueLinkEntity, *app_errors.AppError) {
	if sourceTaskID == req.TargetTaskID {
		return nil, app_errors.BadRequest("link.self_link")
	}

	source, appErr := s.tasks.FindTaskByID(ctx, sourceTaskID)
	if appErr != nil {
		return nil, appErr
	}

	target, appErr := s.tasks.FindTaskByID(ctx, req.TargetTaskID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorizeProject(ctx, actor, source.ProjectID, authz.TaskCreate); appErr != nil {
		return nil, appErr
	}
	if target.ProjectID != source.ProjectID {
		if appErr := s.authorizeProject(ctx, actor, target.ProjectID, authz.ProjectRead); appErr != nil {
			return nil, appErr
		}
	}

	linkID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	return s.repo.CreateLink(ctx, &entity.IssueLinkEntity{
		ID:           linkID.String(),
		LinkType:     entity.LinkType(req.LinkType),
		SourceTaskID: sourceTaskID,
		TargetTaskID: req.TargetTaskID,
		CreatedBy:    actor.ID,
		CreatedAt:    time.Now(),
	})
}

func (s *LinkService) ListLinks(ctx context.Context, actor authz.Actor, taskID string) ([]entity.IssueLinkView, *app_errors.AppError) {
	task, appErr := s.tasks.FindTaskByID(ctx, taskID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorizeProject(ctx, actor, task.ProjectID, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	return s.repo.ListLinksForTask(ctx, taskID)
}

func (s *LinkService) DeleteLink(ctx context.Context, actor authz.Actor, linkID string) *app_errors.AppError {
	link, appErr := s.repo.FindLinkByID(ctx, linkID)
	if appErr != nil {
		return appErr
	}

	source, appErr := s.tasks.FindTaskByID(ctx, link.SourceTaskID)
	if appErr != nil {
		return appErr
	}

	if appErr := s.authorizeProject(ctx, actor, source.ProjectID, authz.TaskCreate); appErr != nil {
		return appErr
	}

	return s.repo.DeleteLink(ctx, linkID)
}
