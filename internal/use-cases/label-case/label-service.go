package label_case

import (
	"context"
	"time"

	"github.com/DevITJAX/FlowOps/internal/authz"
	label_dto "github.com/DevITJAX/FlowOps/internal/dtos/label-dto"
	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
	label_repo "github.com/DevITJAX/FlowOps/internal/repo/label-repo"
	project_repo "github.com/DevITJAX/FlowOps/internal/repo/project-repo"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultLabelColor = "#94a3b8"

type LabelService struct {
	repo     label_repo.LabelRepoContract
	projects project_repo.ProjectRepoContract
}

func NewLabelService(db *pgxpool.Pool) LabelServiceContract {
	return &LabelService{
		repo:     label_repo.NewLabelRepo(db),
		projects: project_repo.NewProjectRepo(db),
	}
}

func (s *LabelService) authorizeProject(ctx context.Context, actor authz.Actor, projectID string, op authz.Operation) *app_errors.AppError {
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

func (s *LabelService) CreateLabel(ctx context.Context, actor authz.Actor, projectID string, req *label_dto.CreateLabelRequest) (*entity.LabelEntity, *app_errors.AppError) {
	if appErr := s.authorizeProject(ctx, actor, projectID, authz.TaskCreate); appErr != nil {
		return nil, appErr
	}

	labelID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.Internal(idErr)
	}

	color := defaultLabelColor
	if req.Color != nil {
		color = *req.Color
	}

	return s.repo.CreateLabel(ctx, &entity.LabelEntity{
		ID:        labelID.String(),
		ProjectID: projectID,
		Name:      req.Name,
		Color:     color,
		CreatedAt: time.Now(),
	})
}

func (s *LabelService) ListLabels(ctx context.Context, actor authz.Actor, projectID string) ([]entity.LabelEntity, *app_errors.AppError) {
	if appErr := s.authorizeProject(ctx, actor, projectID, authz.ProjectRead); appErr != nil {
		return nil, appErr
	}

	return s.repo.ListLabelsByProject(ctx, projectID)
}

func (s *LabelService) UpdateLabel(ctx context.Context, actor authz.Actor, labelID string, req *label_dto.UpdateLabelRequest) (*entity.LabelEntity, *app_errors.AppError) {
	label, appErr := s.repo.FindLabelByID(ctx, labelID)
	if appErr != nil {
		return nil, appErr
	}

	if appErr := s.authorizeProject(ctx, actor, label.ProjectID, authz.TaskCreate); appErr != nil {
		return nil, appErr
	}

	return s.repo.UpdateLabel(ctx, labelID, req.Name, req.Color)
}

func (s *LabelService) DeleteLabel(ctx context.Context, actor authz.Actor, labelID string) *app_errors.AppError {
	label, appErr := s.repo.FindLabelByID(ctx, labelID)
	if appErr != nil {
		return appErr
	}

	if appErr := s.authorizeProject(ctx, actor, label.ProjectID, authz.TaskCreate); appErr != nil {
		return appErr
	}

	return s.repo.DeleteLabel(ctx, labelID)
}
