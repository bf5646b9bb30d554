package label_repo

import (
	"context"

	"github.com/DevITJAX/FlowOps/internal/entity"
	app_errors "github.com/DevITJAX/FlowOps/internal/errors"
)

type LabelRepoContract interface {
	CreateLabel(ctx context.Context, label *entity.LabelEntity) (*entity.LabelEntity, *app_errors.AppError)
	FindLabelByID(ctx context.Context, labelID string) (*entity.LabelEntity, *app_errors.AppError)
	ListLabelsByProject(ctx context.Context, projectID string) ([]entity.LabelEntity, *app_errors.AppError)
	// CountLabelsInProject prüft, ob alle IDs zu Labels des Projekts gehören.
	CountLabelsInProject(ctx context.Context, projectID string, labelIDs []string) (int, *app_errors.AppError)
	UpdateLabel(ctx context.Context, labelID string, name, color *string) (*entity.LabelEntity, *app_errors.AppError)
	DeleteLabel(ctx context.Context, labelID string) *app_errors.AppError
}
